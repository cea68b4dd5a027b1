package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/MGaul6/SkillExchange/migrations"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	MigrateUp   = "up"
	MigrateDown = "down"
)

// Migrate applies the embedded schema in the given direction.
func Migrate(dbUrl, direction string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dbUrl)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		log.Printf("Migration %s successful (no schema version)", direction)
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	default:
		log.Printf("Migration %s successful (version %d, dirty=%t)", direction, version, dirty)
	}
	return nil
}
