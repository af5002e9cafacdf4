package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/vault/api"

	"github.com/architeacher/svc-log-forwarder/internal/ports"
)

var errSecretStorageDisabled = errors.New("secret storage is not configured")

var _ ports.SecretsRepository = (*VaultRepository)(nil)

// VaultRepository reads broker credentials from Vault. A repository built without
// a client answers every read with an error.
type VaultRepository struct {
	vaultClient *api.Client
}

func NewVaultRepository(vaultClient *api.Client) *VaultRepository {
	return &VaultRepository{
		vaultClient: vaultClient,
	}
}

func (r *VaultRepository) SetToken(v string) {
	if r.vaultClient == nil {
		return
	}

	r.vaultClient.SetToken(v)
}

func (r *VaultRepository) GetSecrets(ctx context.Context, path string) (*api.Secret, error) {
	if r.vaultClient == nil {
		return nil, errSecretStorageDisabled
	}

	secret, err := r.vaultClient.Logical().ReadWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret %s: %w", path, err)
	}

	if secret == nil {
		return nil, fmt.Errorf("no secret found at %s", path)
	}

	return secret, nil
}

func (r *VaultRepository) WriteWithContext(ctx context.Context, path string, data map[string]any) (*api.Secret, error) {
	if r.vaultClient == nil {
		return nil, errSecretStorageDisabled
	}

	secret, err := r.vaultClient.Logical().WriteWithContext(ctx, path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return secret, nil
}
