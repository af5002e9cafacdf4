package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

type ForwarderCtx struct {
	deps *Dependencies

	shutdownChannel chan os.Signal
	input           io.Reader

	backgroundActorCtx      context.Context
	backgroundActorStopFunc context.CancelFunc

	relayDone chan error
}

func NewForwarder(opt ...ForwarderOption) *ForwarderCtx {
	fCtx := ForwarderCtx{
		shutdownChannel: make(chan os.Signal, 1),
	}

	for i := range opt {
		opt[i](&fCtx)
	}

	return &fCtx
}

// Run forwards the log input until it is exhausted or a termination signal
// arrives, and returns the process exit code.
func (c *ForwarderCtx) Run() int {
	c.build()

	return c.run()
}

func (c *ForwarderCtx) run() int {
	c.start()
	c.monitorConfigChanges()
	c.shutdownHook()

	return c.shutdown()
}

func (c *ForwarderCtx) build() {
	c.backgroundActorCtx, c.backgroundActorStopFunc = context.WithCancel(context.Background())

	deps, err := initializeDependencies(
		c.backgroundActorCtx,
		WithInputReader(c.input),
		WithForwarder(),
		WithRelay(),
		WithOpsServer(),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	c.deps = deps
}

func (c *ForwarderCtx) start() {
	c.relayDone = make(chan error, 1)

	if c.deps.Infra.OpsServer != nil {
		go func() {
			c.deps.logger.Info().Str("address", c.deps.Infra.OpsServer.Addr).Msg("ops server starting up")

			if err := c.deps.Infra.OpsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				c.deps.logger.Error().Err(err).Msg("unable to start ops server")
				c.backgroundActorStopFunc()
			}
		}()
	}

	go func() {
		c.deps.logger.Info().Msg("starting log forwarder")

		c.relayDone <- c.deps.Workers.Relay.Start(c.backgroundActorCtx)
	}()
}

func (c *ForwarderCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
}

func (c *ForwarderCtx) monitorConfigChanges() {
	reloadErrors := c.deps.configLoader.WatchConfigSignals(c.backgroundActorCtx)

	go func() {
		for err := range reloadErrors {
			if err != nil {
				c.deps.logger.Error().Err(err).Msg("failed to reload config")
				continue
			}

			// The publisher keeps the broker settings it was built with.
			c.deps.logger.Warn().Msg("config reloaded, restart the forwarder to apply new broker settings")
		}

		c.deps.logger.Info().Msg("stopping config monitor")
	}()
}

func (c *ForwarderCtx) shutdown() int {
	var (
		relayErr      error
		relayFinished bool
	)

	// Waits for one of the following shutdown conditions to happen.
	select {
	case <-c.backgroundActorCtx.Done():
		c.deps.logger.Info().Msg("received shutdown signal")
	case <-c.shutdownChannel:
		defer signal.Stop(c.shutdownChannel)

		c.deps.logger.Info().Msg("received shutdown signal")
	case relayErr = <-c.relayDone:
		relayFinished = true

		c.deps.logger.Info().Msg("log input finished")
	}

	// Cancel context that underlying processes would start cleanup.
	c.backgroundActorStopFunc()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.deps.cfg.OpsServer.ShutdownTimeout)
	defer cancel()

	if !relayFinished {
		select {
		case relayErr = <-c.relayDone:
		case <-shutdownCtx.Done():
			c.deps.logger.Error().Msg("log relay did not stop in time")
		}
	}

	c.cleanup(shutdownCtx)

	c.deps.logger.Info().Msg("log forwarder stopped")

	if relayErr != nil && !errors.Is(relayErr, context.Canceled) {
		c.deps.logger.Error().Err(relayErr).Msg("log relay failed")

		return 1
	}

	return 0
}

func (c *ForwarderCtx) cleanup(shutdownCtx context.Context) {
	c.deps.logger.Info().Msg("cleaning up resources...")

	if c.deps.Infra.OpsServer != nil {
		if err := c.deps.Infra.OpsServer.Shutdown(shutdownCtx); err != nil {
			c.deps.logger.Error().Err(err).Msg("unable to gracefully shutdown ops server")
		}
	}

	if c.deps.Services.Forwarder != nil {
		if err := c.deps.Services.Forwarder.Close(); err != nil {
			c.deps.logger.Error().Err(err).Msg("failed to close broker publisher")
		}
	}

	if c.deps.inputCloser != nil {
		if err := c.deps.inputCloser.Close(); err != nil {
			c.deps.logger.Error().Err(err).Msg("failed to close log input")
		}
	}

	if err := c.deps.Infra.Metrics.Shutdown(shutdownCtx); err != nil {
		c.deps.logger.Error().Err(err).Msg("failed to shutdown metrics")
	}

	if c.deps.tracerShutdownFunc != nil {
		if err := c.deps.tracerShutdownFunc(shutdownCtx); err != nil {
			c.deps.logger.Error().Err(err).Msg("failed to shutdown tracer")
		}
	}

	c.deps.logger.Info().Msg("cleanup completed")
}
