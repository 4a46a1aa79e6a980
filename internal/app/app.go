package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/prodcost-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodcost-backend/internal/config"
)

// Run is the server entry point. It loads configuration, optionally applies
// migrations, connects to PostgreSQL and serves the REST API until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Costing.Location.String()),
	)

	if cfg.Database.AutoMigrate {
		if err := Migrate(ctx, logger, cfg.Database.DSN); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svcs := NewServices(cfg, logger, pool)
	handler, stop := NewHandler(cfg, logger, pool, svcs)
	defer stop()

	return serve(ctx, logger, newHTTPServer(cfg.Server, handler), cfg.Server)
}

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, logger *slog.Logger, dsn string) error {
	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer m.Close() //nolint:errcheck

	applied, err := m.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("migrations applied", slog.Any("versions", applied))
	return nil
}
