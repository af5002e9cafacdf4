package runtime

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/vault/api"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/architeacher/svc-log-forwarder/internal/adapters"
	"github.com/architeacher/svc-log-forwarder/internal/adapters/http/handlers"
	"github.com/architeacher/svc-log-forwarder/internal/adapters/middleware"
	"github.com/architeacher/svc-log-forwarder/internal/config"
	"github.com/architeacher/svc-log-forwarder/internal/infrastructure"
	"github.com/architeacher/svc-log-forwarder/internal/ports"
	"github.com/architeacher/svc-log-forwarder/internal/service"
	"github.com/architeacher/svc-log-forwarder/pkg/queue"
)

const (
	healthPath  = "/health"
	metricsPath = "/metrics"
)

type (
	ApplicationWorkers struct {
		Relay ports.BackgroundProcessor
	}

	InfrastructureDeps struct {
		OpsServer           *http.Server
		SecretStorageClient *api.Client
		Publisher           *queue.Publisher
		Metrics             infrastructure.Metrics
		HealthChecker       *adapters.HealthChecker
	}

	Services struct {
		Forwarder *service.ForwarderService
	}

	Repos struct {
		SecretStorageRepo ports.SecretsRepository
	}

	Dependencies struct {
		Workers  ApplicationWorkers
		Services Services

		cfg          *config.ServiceConfig
		configLoader *config.Loader

		logger infrastructure.Logger

		Infra InfrastructureDeps
		Repos Repos

		input       io.Reader
		inputCloser io.Closer

		tracerShutdownFunc infrastructure.TracerShutdownFunc
		secretVersion      uint
	}
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*Dependencies, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, fmt.Errorf("unable to load service configuration: %w", err)
	}

	return buildDependencies(ctx, cfg, infrastructure.New(cfg.Logging), opts...)
}

func buildDependencies(
	ctx context.Context,
	cfg *config.ServiceConfig,
	logger infrastructure.Logger,
	opts ...DependencyOption,
) (*Dependencies, error) {
	logger.Info().Msg("initializing dependencies...")

	deps := &Dependencies{
		cfg:    cfg,
		logger: logger,
	}

	// Start with default options and append any additional options.
	options := append(defaultOptions(ctx), opts...)

	for _, opt := range options {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	deps.logger.Info().Msg("dependencies initialized successfully")

	return deps, nil
}

// openInput returns the configured log input. Stdin is never closed.
func openInput(input string) (io.Reader, io.Closer, error) {
	if input == "" || input == config.InputStdin {
		return os.Stdin, io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(input)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log input %s: %w", input, err)
	}

	return file, file, nil
}

func initOpsServer(
	cfg *config.ServiceConfig,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
	healthChecker ports.HealthChecker,
) *http.Server {
	logger.Info().Msg("creating ops server...")

	router := chi.NewRouter()

	router.Use(
		chimiddleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.NewServiceVersionMiddleware(cfg.AppConfig.ServiceVersion, cfg.AppConfig.CommitSHA).Middleware,
		middleware.NewQuietPaths(healthPath, metricsPath).Middleware,
		middleware.NewAccessLogger(logger.Logger).Middleware,
	)

	opsHandler := handlers.NewOpsHandler(healthChecker, logger)

	router.Get(healthPath, opsHandler.GetHealth)
	router.Handle(metricsPath, metrics.Handler())

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.OpsServer.Host, strconv.Itoa(cfg.OpsServer.Port)),
		Handler:      otelhttp.NewHandler(router, "ops"),
		ReadTimeout:  cfg.OpsServer.ReadTimeout,
		WriteTimeout: cfg.OpsServer.WriteTimeout,
		IdleTimeout:  cfg.OpsServer.IdleTimeout,
	}

	logger.Info().Str("addr", server.Addr).Msg("ops server created")

	return server
}
