package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var files embed.FS

// Up applies every pending migration against db.
// An already up-to-date schema is logged as a skip, not an error.
func Up(db *sql.DB, dbName string, log logrus.FieldLogger) error {
	start := time.Now()
	entry := log.WithFields(logrus.Fields{
		"component": "database",
		"db_name":   dbName,
	})
	entry.WithField("event", "db_migration_start").Info("running migrations")

	src, err := iofs.New(files, "sql")
	if err != nil {
		return fail(entry, start, fmt.Errorf("open embedded migrations: %w", err))
	}

	drv, err := postgres.WithInstance(db, &postgres.Config{DatabaseName: dbName})
	if err != nil {
		return fail(entry, start, fmt.Errorf("migration driver: %w", err))
	}

	m, err := migrate.NewWithInstance("iofs", src, dbName, drv)
	if err != nil {
		return fail(entry, start, fmt.Errorf("migration init: %w", err))
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			entry.WithFields(logrus.Fields{
				"event":       "db_migration_skip",
				"duration_ms": time.Since(start).Milliseconds(),
			}).Info("schema already up to date")
			return nil
		}
		return fail(entry, start, fmt.Errorf("migration up: %w", err))
	}

	version, dirty, _ := m.Version()
	entry.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"version":     version,
		"dirty":       dirty,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("migrations applied")
	return nil
}

func fail(entry *logrus.Entry, start time.Time, err error) error {
	entry.WithFields(logrus.Fields{
		"event":       "db_migration_failed",
		"duration_ms": time.Since(start).Milliseconds(),
	}).WithError(err).Error("migration failed")
	return err
}
