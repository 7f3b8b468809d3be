package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/blockscan/internal/blockfetch"
	"github.com/gabapcia/blockscan/internal/blockscan"
	"github.com/gabapcia/blockscan/internal/config"
	"github.com/gabapcia/blockscan/internal/handlers/cli"
	"github.com/gabapcia/blockscan/internal/infra/explorer/esplora"
	"github.com/gabapcia/blockscan/internal/pkg/logger"
	"github.com/gabapcia/blockscan/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/blockscan/internal/pkg/transport/http"
	"github.com/gabapcia/blockscan/internal/pkg/transport/rest"
)

// telemetryShutdownTimeout bounds how long pending telemetry may take to flush on exit.
const telemetryShutdownTimeout = 5 * time.Second

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithFormat(cfg.LogFormat)); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	shutdownTelemetry := telemetry.ShutdownFunc(telemetry.Noop)
	if cfg.TelemetryEnabled {
		shutdownTelemetry, err = telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()

		if err := shutdownTelemetry(ctx); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.HTTPTimeout),
		transporthttp.WithRetryMax(cfg.HTTPRetryMax),
	)
	explorer := esplora.NewClient(rest.NewClient(httpClient, cfg.ExplorerURL))
	scanner := blockscan.New(blockfetch.New(explorer))

	return cli.Run(ctx, scanner, os.Stdout, os.Args)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
