package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alexanderramin/lifedash/internal/cli"
	"github.com/alexanderramin/lifedash/internal/cli/formatter"
	"github.com/alexanderramin/lifedash/internal/config"
	"github.com/alexanderramin/lifedash/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("LIFEDASH_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	formatter.SetColor(useColor(cfg.Color))

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	// Calendar buckets follow the clock's location.
	clock := func() time.Time { return time.Now().In(cfg.Location) }

	app := &cli.App{
		Dashboard:       service.NewDashboardService(clock, observers...),
		Snapshots:       service.NewSnapshotService(cfg.Location, observers...),
		DefaultSnapshot: cfg.SnapshotPath,
		Location:        cfg.Location,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(app)
	root.SilenceErrors = true
	return root.ExecuteContext(ctx)
}

func useColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
