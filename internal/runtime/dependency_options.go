package runtime

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/vault/api"

	"github.com/architeacher/svc-log-forwarder/internal/adapters"
	"github.com/architeacher/svc-log-forwarder/internal/adapters/codec"
	"github.com/architeacher/svc-log-forwarder/internal/adapters/relay"
	"github.com/architeacher/svc-log-forwarder/internal/adapters/repos"
	"github.com/architeacher/svc-log-forwarder/internal/config"
	"github.com/architeacher/svc-log-forwarder/internal/infrastructure"
	"github.com/architeacher/svc-log-forwarder/internal/service"
	"github.com/architeacher/svc-log-forwarder/internal/shared/backoff"
)

type (
	DependencyOption func(*Dependencies) error
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithSecretStorage(),
		WithSecretStorageRepo(),
		WithConfigLoader(ctx),
		WithMetrics(ctx),
		WithTracing(ctx),
	}
}

// WithSecretStorage initializes the Vault client using ENV config.
func WithSecretStorage() DependencyOption {
	return func(d *Dependencies) error {
		cfg := d.cfg.SecretStorage

		if !cfg.Enabled {
			return nil
		}

		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = cfg.Address
		vaultConfig.Timeout = cfg.Timeout

		if cfg.TLSSkipVerify {
			tlsConfig := &api.TLSConfig{
				Insecure: true,
			}
			if err := vaultConfig.ConfigureTLS(tlsConfig); err != nil {
				return fmt.Errorf("failed to configure TLS: %w", err)
			}
		}

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return fmt.Errorf("failed to create Vault client: %w", err)
		}

		if cfg.Namespace != "" {
			client.SetNamespace(cfg.Namespace)
		}

		d.Infra.SecretStorageClient = client

		return nil
	}
}

func WithSecretStorageRepo() DependencyOption {
	return func(d *Dependencies) error {
		d.Repos.SecretStorageRepo = repos.NewVaultRepository(d.Infra.SecretStorageClient)

		return nil
	}
}

func WithConfigLoader(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		d.configLoader = config.NewLoader(d.cfg, d.Repos.SecretStorageRepo, d.secretVersion)

		if !d.cfg.SecretStorage.Enabled {
			d.logger.Info().Msg("secret storage is disabled, skipping vault configuration loading")

			return nil
		}

		version, err := d.configLoader.Load(ctx, d.Repos.SecretStorageRepo, d.cfg)
		if err != nil {
			return fmt.Errorf("unable to load service configuration: %w", err)
		}

		d.secretVersion = version
		d.configLoader = config.NewLoader(d.cfg, d.Repos.SecretStorageRepo, version)

		return nil
	}
}

func WithMetrics(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		metrics, err := infrastructure.NewMetrics(ctx, *d.cfg, d.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize metrics: %w", err)
		}

		d.Infra.Metrics = metrics

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		if !d.cfg.Telemetry.Traces.Enabled {
			d.tracerShutdownFunc = func(_ context.Context) error {
				return nil
			}

			return nil
		}

		tracerShutdownFunc, err := infrastructure.InitGlobalTracer(ctx, d.cfg.Telemetry, d.cfg.AppConfig)
		if err != nil {
			d.logger.Error().Err(err).Msg("failed to initialize global tracer")

			return err
		}

		d.tracerShutdownFunc = tracerShutdownFunc

		return nil
	}
}

// WithForwarder builds the publisher, the forwarding service and the health
// checker that listens to the publisher's connection state.
func WithForwarder() DependencyOption {
	return func(d *Dependencies) error {
		healthChecker := adapters.NewHealthChecker(d.cfg.AppConfig.ServiceVersion, d.Infra.Metrics)

		publisher := infrastructure.NewPublisher(
			d.cfg.Queue,
			d.logger,
			healthChecker,
			codec.NewRadioCodec(),
		)

		forwarder := service.NewForwarderService(
			publisher,
			d.cfg.Forwarder,
			d.cfg.CircuitBreaker,
			backoff.NewExponentialStrategy(d.cfg.Backoff),
			d.logger,
			d.Infra.Metrics,
		)

		healthChecker.WatchBreaker(forwarder.BreakerState)

		d.Infra.HealthChecker = healthChecker
		d.Infra.Publisher = publisher
		d.Services.Forwarder = forwarder

		return nil
	}
}

// WithRelay opens the log input unless one was provided and builds the relay.
func WithRelay() DependencyOption {
	return func(d *Dependencies) error {
		if d.Services.Forwarder == nil {
			return fmt.Errorf("relay requires the forwarder to be initialized")
		}

		if d.input == nil {
			input, closer, err := openInput(d.cfg.Forwarder.Input)
			if err != nil {
				return err
			}

			d.input = input
			d.inputCloser = closer
		}

		d.Workers.Relay = relay.NewProcessor(
			d.input,
			d.Services.Forwarder,
			d.cfg.Forwarder.Source,
			d.cfg.Forwarder.MaxLineBytes,
			d.logger,
			d.Infra.Metrics,
		)

		return nil
	}
}

// WithInputReader makes the relay read from input instead of the configured source.
func WithInputReader(input io.Reader) DependencyOption {
	return func(d *Dependencies) error {
		if input != nil {
			d.input = input
		}

		return nil
	}
}

func WithOpsServer() DependencyOption {
	return func(d *Dependencies) error {
		if !d.cfg.OpsServer.Enabled {
			d.logger.Info().Msg("ops server is disabled")

			return nil
		}

		if d.Infra.HealthChecker == nil {
			return fmt.Errorf("ops server requires the health checker to be initialized")
		}

		d.Infra.OpsServer = initOpsServer(d.cfg, d.logger, d.Infra.Metrics, d.Infra.HealthChecker)

		return nil
	}
}
