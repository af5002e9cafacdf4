package config

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSecrets serves one KV v2 secret and counts logins.
type staticSecrets struct {
	secret *api.Secret
	tokens []string
}

func (s *staticSecrets) SetToken(v string) {
	s.tokens = append(s.tokens, v)
}

func (s *staticSecrets) GetSecrets(_ context.Context, _ string) (*api.Secret, error) {
	return s.secret, nil
}

func (s *staticSecrets) WriteWithContext(_ context.Context, _ string, _ map[string]any) (*api.Secret, error) {
	return nil, nil
}

func versionedSecret(password, version string) *api.Secret {
	return &api.Secret{
		Data: map[string]any{
			"data":     map[string]any{"RABBITMQ_PASSWORD": password},
			"metadata": map[string]any{"current_version": json.Number(version)},
		},
	}
}

func TestInit(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "sandbox")
	t.Setenv("APP_SERVICE_VERSION", "1.0.0")
	t.Setenv("APP_COMMIT_SHA", "1234xwz")
	t.Setenv("LOGGING_LEVEL", "debug")
	t.Setenv("RABBITMQ_USERNAME", "john.doe")
	t.Setenv("RABBITMQ_PASSWORD", "insecure.password")
	t.Setenv("FORWARDER_SOURCE", "web-01")
	t.Setenv("FORWARDER_MAX_ATTEMPTS", "5")

	cfg, err := Init()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "sandbox", cfg.AppConfig.Env)
	assert.Equal(t, "svc-log-forwarder", cfg.AppConfig.ServiceName)
	assert.Equal(t, "1.0.0", cfg.AppConfig.ServiceVersion)
	assert.Equal(t, "1234xwz", cfg.AppConfig.CommitSHA)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "john.doe", cfg.Queue.Username)
	assert.Equal(t, "insecure.password", cfg.Queue.Password)
	assert.Equal(t, "web-01", cfg.Forwarder.Source)
	assert.Equal(t, 5, cfg.Forwarder.MaxAttempts)

	assert.Equal(t, "graylog2", cfg.Queue.ExchangeName)
	assert.Equal(t, "topic", cfg.Queue.ExchangeType)
	assert.Equal(t, "graylog2-radio-messages", cfg.Queue.QueueName)
	assert.Equal(t, "graylog2-radio-message", cfg.Queue.RoutingKey)
	assert.Equal(t, InputStdin, cfg.Forwarder.Input)
}

func TestInit_DefaultSourceIsHostname(t *testing.T) {
	t.Setenv("FORWARDER_SOURCE", "")

	cfg, err := Init()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Forwarder.Source)
}

func TestInit_InvalidValue(t *testing.T) {
	t.Setenv("FORWARDER_MAX_ATTEMPTS", "many")

	_, err := Init()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse service configuration")
}

func TestDumpConfig_OmitsSecrets(t *testing.T) {
	t.Parallel()

	cfg := &ServiceConfig{
		Queue: QueueConfig{
			Host:     "rabbitmq",
			Username: "guest",
			Password: "s3cr3t",
		},
		SecretStorage: SecretStorageConfig{
			Token:    "vault-token",
			SecretID: "approle-secret",
		},
	}

	var out bytes.Buffer

	loader := NewLoader(cfg, nil, 0)
	loader.out = &out

	loader.DumpConfig()

	dump := out.String()
	assert.Contains(t, dump, "=== Configuration Dump ===")
	assert.Contains(t, dump, `"host": "rabbitmq"`)
	assert.Contains(t, dump, `"username": "guest"`)
	assert.NotContains(t, dump, "s3cr3t")
	assert.NotContains(t, dump, "vault-token")
	assert.NotContains(t, dump, "approle-secret")
}

func TestGetSecretVersion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		metadata    map[string]any
		expected    uint
		expectedErr string
	}{
		{
			name:     "nil metadata",
			metadata: nil,
			expected: 0,
		},
		{
			name:     "missing version",
			metadata: map[string]any{},
			expected: 0,
		},
		{
			name:     "float version",
			metadata: map[string]any{"current_version": float64(3)},
			expected: 3,
		},
		{
			name:     "json number version",
			metadata: map[string]any{"current_version": json.Number("7")},
			expected: 7,
		},
		{
			name:        "malformed json number",
			metadata:    map[string]any{"current_version": json.Number("seven")},
			expectedErr: "failed to parse version",
		},
		{
			name:        "unexpected type",
			metadata:    map[string]any{"current_version": "7"},
			expectedErr: "unexpected version type: string",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			version, err := getSecretVersion(tc.metadata)

			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, version)
		})
	}
}

func TestApplySecretsToConfig(t *testing.T) {
	t.Parallel()

	cfg := &ServiceConfig{
		Queue: QueueConfig{
			Host:        "localhost",
			Username:    "guest",
			VirtualHost: "/",
		},
	}

	applySecretsToConfig(cfg, map[string]any{
		"RABBITMQ_USERNAME":     "forwarder",
		"RABBITMQ_PASSWORD":     "s3cr3t",
		"RABBITMQ_HOST":         "",
		"RABBITMQ_VIRTUAL_HOST": 42,
		"UNRELATED":             "ignored",
	})

	assert.Equal(t, "forwarder", cfg.Queue.Username)
	assert.Equal(t, "s3cr3t", cfg.Queue.Password)
	assert.Equal(t, "localhost", cfg.Queue.Host)
	assert.Equal(t, "/", cfg.Queue.VirtualHost)
}

func TestLoader_HandleConfigReload(t *testing.T) {
	t.Parallel()

	cfg := &ServiceConfig{
		SecretStorage: SecretStorageConfig{
			Enabled:    true,
			AuthMethod: "token",
			Token:      "root-token",
			MountPath:  "svc-log-forwarder",
			Timeout:    time.Second,
		},
		Queue: QueueConfig{Password: "initial"},
	}

	secrets := &staticSecrets{secret: versionedSecret("initial", "1")}
	loader := NewLoader(cfg, secrets, 1)

	loader.handleConfigReload(context.Background())

	assert.Equal(t, "initial", cfg.Queue.Password)
	assert.Empty(t, secrets.tokens, "an unchanged version must not reload")
	assert.Empty(t, loader.reloadErrors)

	secrets.secret = versionedSecret("rotated", "2")

	loader.handleConfigReload(context.Background())

	// the reload only updates the in-memory config; the publisher keeps its own copy
	assert.Equal(t, "rotated", cfg.Queue.Password)
	assert.Equal(t, uint(2), loader.lastVersion)
	assert.Equal(t, []string{"root-token"}, secrets.tokens)

	select {
	case err := <-loader.reloadErrors:
		assert.NoError(t, err)
	default:
		t.Fatal("reload status was not reported")
	}
}
