// Package migrations embeds the SQL schema and applies it with golang-migrate.
package migrations

import (
	"context"
	"embed"
	"log/slog"

	"lastseen/config"
	"lastseen/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// NewMigrator builds a migrate instance over the embedded schema.
func NewMigrator(databaseURL string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}

	return m, nil
}

// Run applies all pending migrations. An up-to-date schema is not an error.
func Run(databaseURL string) error {
	m, err := NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to run migrations")
	}

	return nil
}

// Params defines the dependencies of the startup migration hook.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Register applies migrations on application start when enabled.
func Register(params Params) {
	cfg := params.Config.Migrate
	if cfg == nil || !cfg.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.DatabaseURL == "" {
				return errors.New("migrate.databaseUrl is required when migrations are enabled")
			}
			params.Logger.InfoContext(ctx, "[Migrate] Applying schema migrations")
			if err := Run(cfg.DatabaseURL); err != nil {
				return err
			}
			params.Logger.InfoContext(ctx, "[Migrate] Schema is up to date")

			return nil
		},
	})
}
