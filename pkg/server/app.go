package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"GridPulse/internal/stream"
	"GridPulse/pkg/config"
	xhttp "GridPulse/pkg/http"
	applogger "GridPulse/pkg/logger"
)

// App encapsulates the application lifecycle: HTTP server, streaming loops
// and graceful shutdown.
type App struct {
	cfg         *config.Config
	logger      *applogger.Logger
	httpHandler xhttp.Handler
	httpServer  *xhttp.Server
	hub         *stream.Hub
	broadcaster *stream.Broadcaster
}

// New creates an App with all dependencies injected.
func New(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler, hub *stream.Hub, broadcaster *stream.Broadcaster) *App {
	return &App{
		cfg:         cfg,
		logger:      logger,
		httpHandler: handler,
		hub:         hub,
		broadcaster: broadcaster,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}
	a.httpServer = xhttp.NewServer(a.httpHandler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(a.logger),
	)

	if a.broadcaster != nil && a.cfg.Stream.Enabled {
		a.broadcaster.Start(ctx)
	}

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("gridpulse started", applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	if a.broadcaster != nil {
		a.broadcaster.Stop()
	}
	if a.hub != nil {
		a.hub.Close()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
