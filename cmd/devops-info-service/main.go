package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonwraymond/devops-info-service/info"
	"github.com/jonwraymond/devops-info-service/observe"
	"github.com/jonwraymond/devops-info-service/observe/exporters"
	"github.com/jonwraymond/devops-info-service/server"
)

const telemetryShutdownTimeout = 5 * time.Second

func main() {
	// Uptime is measured from here.
	startedAt := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, startedAt, os.Getenv, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// run serves until ctx is cancelled. Startup failures are logged to stderr
// and returned.
func run(ctx context.Context, startedAt time.Time, getenv func(string) string, stderr io.Writer) error {
	boot := observe.NewLoggerWithWriter("info", stderr)

	cfg, err := server.LoadConfig(getenv)
	if err != nil {
		boot.Error(ctx, "invalid configuration", observe.F("error", err))
		return err
	}

	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName:     info.ServiceName,
		Version:         info.ServiceVersion,
		TracesExporter:  exporters.SelectedExporter(getenv, exporters.TracesExporterEnv),
		MetricsExporter: exporters.SelectedExporter(getenv, exporters.MetricsExporterEnv),
		LogLevel:        cfg.LogLevel(),
		LogOutput:       stderr,
	})
	if err != nil {
		boot.Error(ctx, "telemetry setup failed", observe.F("error", err))
		return err
	}
	logger := obs.Logger()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			logger.Warn(shutdownCtx, "telemetry shutdown failed", observe.F("error", err))
		}
	}()

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		logger.Error(ctx, "telemetry setup failed", observe.F("error", err))
		return err
	}

	gin.SetMode(cfg.GinMode())
	gin.DefaultWriter = observe.NewLogWriter(logger, observe.LevelDebug)
	gin.DefaultErrorWriter = observe.NewLogWriter(logger, observe.LevelError)

	uptime := info.NewUptime(startedAt)
	srv, err := server.New(cfg, server.Deps{
		Uptime:     uptime,
		System:     info.NewSystemCollector(),
		Middleware: mw,
		Logger:     logger,
	})
	if err != nil {
		logger.Error(ctx, "server setup failed", observe.F("error", err))
		return err
	}

	logger.Info(ctx, "starting",
		observe.F("service", info.ServiceName),
		observe.F("version", info.ServiceVersion),
		observe.F("addr", cfg.Addr()),
		observe.F("debug", cfg.Debug),
		observe.F("started_at", uptime.StartedAt().Format(time.RFC3339)),
	)
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error(context.Background(), "server stopped with error", observe.F("error", err))
		return err
	}
	logger.Info(context.Background(), "stopped")
	return nil
}
