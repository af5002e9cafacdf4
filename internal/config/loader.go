package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/architeacher/svc-log-forwarder/internal/ports"
	"github.com/hashicorp/vault/api"
	"github.com/kelseyhightower/envconfig"
)

// Loader handles configuration loading and reloading.
type Loader struct {
	cfg              *ServiceConfig
	secretsRepo      ports.SecretsRepository
	configSignalChan chan os.Signal
	reloadErrors     chan error
	ticker           *time.Ticker
	lastVersion      uint
	out              io.Writer
}

// NewLoader creates a new config loader instance.
func NewLoader(cfg *ServiceConfig, secretsRepo ports.SecretsRepository, initialVersion uint) *Loader {
	return &Loader{
		cfg:              cfg,
		secretsRepo:      secretsRepo,
		configSignalChan: make(chan os.Signal, 1),
		reloadErrors:     make(chan error, 1),
		lastVersion:      initialVersion,
		out:              os.Stdout,
	}
}

// WatchConfigSignals monitors for SIGHUP (reload) and SIGUSR1 (dump) signals.
// It also starts a background ticker for periodic config reloading if enabled.
// It returns a channel that will receive reload errors for logging by the caller.
func (l *Loader) WatchConfigSignals(ctx context.Context) <-chan error {
	signal.Notify(l.configSignalChan, syscall.SIGHUP, syscall.SIGUSR1)

	if l.cfg.SecretStorage.Enabled && l.cfg.SecretStorage.PollInterval > 0 {
		l.ticker = time.NewTicker(l.cfg.SecretStorage.PollInterval)
	}

	go func() {
		defer signal.Stop(l.configSignalChan)
		defer close(l.reloadErrors)

		var reloadTickerChan <-chan time.Time
		if l.ticker != nil {
			defer l.ticker.Stop()

			reloadTickerChan = l.ticker.C
		}

		for {
			select {
			case <-ctx.Done():
				return

			case <-reloadTickerChan:
				l.handleConfigReload(ctx)

			case sig := <-l.configSignalChan:
				switch sig {
				case syscall.SIGHUP:
					if l.cfg.SecretStorage.Enabled {
						l.handleConfigReload(ctx)
					}

				case syscall.SIGUSR1:
					l.DumpConfig()
				}
			}
		}
	}()

	return l.reloadErrors
}

// DumpConfig writes the current configuration as JSON. Secrets are excluded by
// their json tags.
func (l *Loader) DumpConfig() {
	configJSON, err := json.MarshalIndent(l.cfg, "", "  ")
	if err != nil {
		fmt.Fprintf(l.out, "Error marshaling config: %v\n", err)

		return
	}

	fmt.Fprintf(l.out, "\n=== Configuration Dump ===\n%s\n=== End Configuration ===\n\n", string(configJSON))
}

// Load overlays broker settings from the secrets' repository.
func (l *Loader) Load(ctx context.Context, secretsRepo ports.SecretsRepository, cfg *ServiceConfig) (uint, error) {
	if !cfg.SecretStorage.Enabled {
		return 0, fmt.Errorf("secret storage is not enabled")
	}

	if err := authenticateVault(ctx, secretsRepo, cfg.SecretStorage); err != nil {
		return 0, fmt.Errorf("failed to authenticate with Vault: %w", err)
	}

	secret, err := getSecretsWithRetry(ctx, secretsRepo, cfg.SecretStorage)
	if err != nil {
		return 0, fmt.Errorf("failed to load secrets from Vault: %w", err)
	}

	data, err := secretSection(secret, cfg.SecretStorage.MountPath, "data")
	if err != nil {
		return 0, err
	}

	applySecretsToConfig(cfg, data)

	metadata, err := secretSection(secret, cfg.SecretStorage.MountPath, "metadata")
	if err != nil {
		return 0, err
	}

	version, err := getSecretVersion(metadata)
	if err != nil {
		return 0, fmt.Errorf("failed to get secret version: %w", err)
	}

	return version, nil
}

// Init config from environment variables.
func Init() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	if len(ServiceVersion) != 0 {
		cfg.AppConfig.ServiceVersion = ServiceVersion
	}

	if len(CommitSHA) != 0 {
		cfg.AppConfig.CommitSHA = CommitSHA
	}

	if cfg.Forwarder.Source == "" {
		if hostname, err := os.Hostname(); err == nil {
			cfg.Forwarder.Source = hostname
		}
	}

	return cfg, nil
}

func authenticateVault(ctx context.Context, client ports.SecretsRepository, config SecretStorageConfig) error {
	switch strings.ToLower(config.AuthMethod) {
	case "token":
		if config.Token == "" {
			return fmt.Errorf("token is required for token auth method")
		}

		client.SetToken(config.Token)

		return nil

	case "approle":
		if config.RoleID == "" || config.SecretID == "" {
			return fmt.Errorf("role_id and secret_id are required for approle auth method")
		}

		resp, err := client.WriteWithContext(ctx, "auth/approle/login", map[string]any{
			"role_id":   config.RoleID,
			"secret_id": config.SecretID,
		})
		if err != nil {
			return fmt.Errorf("failed to authenticate via approle: %w", err)
		}

		if resp == nil || resp.Auth == nil {
			return fmt.Errorf("no auth info returned from Vault")
		}

		client.SetToken(resp.Auth.ClientToken)

		return nil

	default:
		return fmt.Errorf("unsupported auth method: %s", config.AuthMethod)
	}
}

func (l *Loader) handleConfigReload(ctx context.Context) {
	secret, err := getSecretsWithRetry(ctx, l.secretsRepo, l.cfg.SecretStorage)
	if err != nil {
		l.reportReloadStatus(fmt.Errorf("failed to load secret metadata: %w", err))

		return
	}

	metadata, err := secretSection(secret, l.cfg.SecretStorage.MountPath, "metadata")
	if err != nil {
		l.reportReloadStatus(err)

		return
	}

	currentVersion, err := getSecretVersion(metadata)
	if err != nil {
		l.reportReloadStatus(fmt.Errorf("failed to get secret version: %w", err))

		return
	}

	if currentVersion == l.lastVersion {
		return
	}

	version, err := l.Load(ctx, l.secretsRepo, l.cfg)
	if err != nil {
		l.reportReloadStatus(err)

		return
	}

	l.lastVersion = version
	l.reportReloadStatus(nil)
}

func getSecretsWithRetry(ctx context.Context, secretsRepo ports.SecretsRepository, cfg SecretStorageConfig) (*api.Secret, error) {
	path := fmt.Sprintf("apps/data/%s", cfg.MountPath)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	var (
		secret *api.Secret
		err    error
	)

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		secret, err = secretsRepo.GetSecrets(ctx, path)
		if err == nil {
			break
		}

		if attempt < cfg.MaxRetries {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("failed to read from path %s: %w", path, ctx.Err())
			case <-time.After(time.Duration(attempt+1) * time.Second):
			}
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read from path %s after %d retries: %w", path, cfg.MaxRetries, err)
	}

	return secret, nil
}

// secretSection extracts "data" or "metadata" from a KV v2 read.
func secretSection(secret *api.Secret, mountPath, section string) (map[string]any, error) {
	if secret == nil || secret.Data == nil {
		return nil, nil
	}

	result, ok := secret.Data[section].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid secret format at path apps/data/%s, missing '%s' key", mountPath, section)
	}

	return result, nil
}

func getSecretVersion(metadata map[string]any) (uint, error) {
	if metadata == nil {
		return 0, nil
	}

	currentVersion, ok := metadata["current_version"]
	if !ok {
		return 0, nil
	}

	switch v := currentVersion.(type) {
	case float64:
		return uint(v), nil
	case uint:
		return v, nil
	case json.Number:
		version, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("failed to parse version: %w", err)
		}

		return uint(version), nil
	default:
		return 0, fmt.Errorf("unexpected version type: %T", currentVersion)
	}
}

// applySecretsToConfig maps flat key-value pairs stored in Vault onto the broker settings.
func applySecretsToConfig(cfg *ServiceConfig, data map[string]any) {
	for key, value := range data {
		strValue, ok := value.(string)
		if !ok || strValue == "" {
			continue
		}

		switch key {
		case "RABBITMQ_USERNAME":
			cfg.Queue.Username = strValue
		case "RABBITMQ_PASSWORD":
			cfg.Queue.Password = strValue
		case "RABBITMQ_HOST":
			cfg.Queue.Host = strValue
		case "RABBITMQ_VIRTUAL_HOST":
			cfg.Queue.VirtualHost = strValue
		}
	}
}

// reportReloadStatus sends reload status (error or nil for success) to reloadErrors channel.
// It uses non-blocking send to avoid blocking if no receiver is ready.
func (l *Loader) reportReloadStatus(err error) {
	select {
	case l.reloadErrors <- err:
	default:
	}
}
