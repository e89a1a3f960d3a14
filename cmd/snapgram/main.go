package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snapgram/config"
	"snapgram/internal/cache"
	"snapgram/internal/delivery/cli"
	gatewayinfra "snapgram/internal/infra/gateway"
	"snapgram/internal/infra/id"
	logs "snapgram/internal/infra/log"
	"snapgram/internal/infra/metrics"
	"snapgram/internal/query"
	"snapgram/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const lifecycleTimeout = 15 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	var root *cobra.Command

	app := fx.New(
		injectInfra(),
		injectUsecase(),
		injectDelivery(),
		fx.Populate(&root),
		fx.WithLogger(newFxLogger),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "snapgram:", err)

		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx, cancelStart := context.WithTimeout(ctx, lifecycleTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintln(os.Stderr, "snapgram:", err)

		return 1
	}

	code := 0
	if err := root.ExecuteContext(ctx); err != nil {
		code = 1
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintln(os.Stderr, "snapgram:", err)

		return 1
	}

	return code
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			id.NewUUIDGenerator,
			metrics.NewRegistry,
			newCache,
		),
		gatewayinfra.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewPostService,
			impl.NewSaveService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			query.NewClient,
			cli.NewRootCommand,
		),
	)
}

// newCache creates the process-wide query cache
func newCache(cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry) *cache.Cache {
	opts := []cache.Option{
		cache.WithStaleTime(cfg.Cache.StaleTime),
		cache.WithGCTime(cfg.Cache.GCTime),
		cache.WithLogger(logger),
	}
	if cfg.Cache.Metrics {
		opts = append(opts, cache.WithRegisterer(reg))
	}

	return cache.New(opts...)
}

// newFxLogger keeps container events out of the way unless debug logging is on.
func newFxLogger(logger *slog.Logger) fxevent.Logger {
	fxLogger := &fxevent.SlogLogger{Logger: logger}
	fxLogger.UseLogLevel(slog.LevelDebug)

	return fxLogger
}
