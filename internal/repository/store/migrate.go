package store

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"

	"github.com/Rrens/jusoor-api/internal/config"
)

//go:embed migrations
var migrations embed.FS

// Direction selects which way RunMigrations moves the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// RunMigrations applies or rolls back the embedded migrations for the configured driver
func RunMigrations(cfg config.DatabaseConfig, dir Direction) error {
	if _, err := dialectFor(cfg.Driver); err != nil {
		return err
	}

	src, err := iofs.New(migrations, "migrations/"+cfg.Driver)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	switch dir {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction: %q", dir)
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Str("driver", cfg.Driver).Str("direction", string(dir)).Msg("Database migration: no changes")
			return nil
		}
		return fmt.Errorf("failed to run migrate %s: %w", dir, err)
	}

	log.Info().Str("driver", cfg.Driver).Str("direction", string(dir)).Msg("Database migration: success")
	return nil
}

// migrateURL turns the driver DSN into the URL form golang-migrate expects.
func migrateURL(cfg config.DatabaseConfig) string {
	switch cfg.Driver {
	case config.DriverMySQL:
		return "mysql://" + cfg.DSN()
	case config.DriverSQLite:
		return "sqlite://" + strings.TrimPrefix(cfg.DSN(), "file:")
	default:
		return cfg.DSN()
	}
}
