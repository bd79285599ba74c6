package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/APVS-BRO/ai-careers-hub/config"
)

// ServiceOrchestrationConfig contains configuration for running the enabled
// services until shutdown.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunServicesWithShutdown starts the enabled services, blocks until SIGINT or
// SIGTERM, then shuts everything down gracefully.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var server *http.Server
	if cfg.Config.IsHTTPServerEnabled() {
		server = StartHTTPServer(&HTTPServerConfig{
			Config:   cfg.Config,
			Services: cfg.Services,
			Logger:   logger,
		})
	}

	workerDone, err := startWorkerIfEnabled(ctx, cfg, logger)
	if err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("shutdown signal received")

	// Worker goroutines observe ctx cancellation; wait for them to drain.
	if workerDone != nil {
		<-workerDone
		logger.Info("worker stopped")
	}

	return ShutdownHTTPServer(context.Background(), server, logger)
}

// startWorkerIfEnabled launches the agent worker when the worker service is
// selected. The returned channel closes once the worker exits.
func startWorkerIfEnabled(
	ctx context.Context,
	cfg *ServiceOrchestrationConfig,
	logger *slog.Logger,
) (<-chan struct{}, error) {
	if !cfg.Config.IsWorkerEnabled() {
		return nil, nil
	}

	obs, err := BuildObservability(cfg.Config.Observability, logger)
	if err != nil {
		return nil, err
	}

	dispatchCfg := DispatchConfig{
		Agents:   cfg.Config.Agents,
		Logger:   logger,
		Metrics:  obs.Metrics,
		Failures: obs.Failures,
	}
	runner, err := BuildWorker(dispatchCfg, cfg.Services.Dispatch)
	if err != nil {
		obs.Close(logger)
		return nil, err
	}
	sweeper, err := BuildReaper(dispatchCfg, cfg.Services.Dispatch)
	if err != nil {
		obs.Close(logger)
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer obs.Close(logger)
		logger.Info("starting agent worker",
			"concurrency", cfg.Config.Agents.Dispatcher.WorkerConcurrency)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return runner.Run(gctx) })
		g.Go(func() error { return sweeper.Run(gctx) })
		if runErr := g.Wait(); runErr != nil && !errors.Is(runErr, context.Canceled) {
			logger.Error("agent worker failed", "error", runErr)
		}
	}()
	return done, nil
}
