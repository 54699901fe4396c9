package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Simplici0/kalkulator/internal/catalog"
	"github.com/Simplici0/kalkulator/internal/config"
	"github.com/Simplici0/kalkulator/internal/db"
	"github.com/Simplici0/kalkulator/internal/logger"
	"github.com/Simplici0/kalkulator/internal/migrations"
	"github.com/Simplici0/kalkulator/internal/seed"
	"github.com/Simplici0/kalkulator/internal/settings"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read config: %v\n\n%s", err, config.Usage())
		os.Exit(1)
	}

	log, closeLog, err := logger.NewWithErrorFile(cfg.Env, os.Stdout, cfg.ErrorLog)
	if err != nil {
		log.Warn("cannot open error log file", logger.Err(err))
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", logger.Err(err))
		closeLog()
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()

	if err := migrations.Up(ctx, database); err != nil {
		return fmt.Errorf("run database migrations: %w", err)
	}

	stats, err := seed.Run(ctx, database, seed.Config{Catalog: cfg.SeedCatalog})
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	log.Debug("seed finished", slog.Int("inserts", stats.Inserts))

	catalogStore := catalog.NewStore(db.NewProductRepository(database))
	if err := catalogStore.Load(ctx); err != nil {
		return err
	}
	settingsStore := settings.NewStore(db.NewSettingsRepository(database))
	if err := settingsStore.Load(ctx); err != nil {
		return err
	}

	cascade, _ := cfg.Cascade()
	match, _ := cfg.Match()
	srv := newServer(log, catalogStore, settingsStore, cascade, match)

	log.Info("catalog loaded",
		slog.Int("products", len(catalogStore.Snapshot().Products)),
		slog.String("cascade", cascade.String()),
		slog.String("match", match.String()),
	)

	httpServer := &http.Server{
		Addr:         cfg.Address,
		Handler:      srv.routes(cfg),
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
