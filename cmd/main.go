package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"envirotrack/internal/app"
	"envirotrack/internal/config"
	"envirotrack/internal/logging"
)

const appName = "envirotrack"

// Default version is "dev" if not set with -ldflags "-X main.version=..."
var version = "dev"

// Exit codes: 0 normal shutdown, 2 configuration error, 1 other startup or
// fatal runtime error.
const (
	exitFatal  = 1
	exitConfig = 2
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(exitConfig)
	}

	logger := logging.New(cfg, version, appName)
	slog.SetDefault(logger)

	slog.Info("starting",
		"app", appName,
		"version", version,
		"env", cfg.AppEnv,
		"log_level", cfg.LogLevel.String(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		var vErr *config.ValidationError
		if errors.As(err, &vErr) {
			slog.Error("config error", "err", err)
			os.Exit(exitConfig)
		}
		slog.Error("run failed", "err", err)
		os.Exit(exitFatal)
	}

	slog.Info("shutting down")
}
