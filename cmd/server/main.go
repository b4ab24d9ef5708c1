package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/pokenator/pokenator/internal/config"
	"github.com/pokenator/pokenator/internal/database"
	"github.com/pokenator/pokenator/internal/engine"
	"github.com/pokenator/pokenator/internal/migrations"
	"github.com/pokenator/pokenator/internal/pokedex"
	"github.com/pokenator/pokenator/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Dataset + engine ---
	dataset, err := pokedex.Load()
	if err != nil {
		return fmt.Errorf("loading pokedex: %w", err)
	}
	eng, err := engine.New(dataset)
	if err != nil {
		return fmt.Errorf("building engine: %w", err)
	}
	logger.Info("loaded pokedex", "records", len(dataset))

	// --- SQLite ---
	if dir := filepath.Dir(cfg.DBPath); dir != "." && cfg.DBPath != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	history := server.NewSQLiteStore(db)

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, eng, history, db)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
