package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/sebuszqo/BudgetTracker/internal/config"
	"github.com/sebuszqo/BudgetTracker/internal/log"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// RunMigrations applies every pending up migration for the service's driver.
func (s *DBService) RunMigrations() error {
	var (
		driver migratedb.Driver
		dir    string
		err    error
	)

	switch s.Driver {
	case config.DriverSQLite:
		// The sqlite driver does not pin a connection, so the shared pool can be used
		// directly; closing the migrate instance would close the pool, so it is left open.
		driver, err = migratesqlite.WithInstance(s.DB, &migratesqlite.Config{})
		if err != nil {
			return fmt.Errorf("create sqlite migration driver: %w", err)
		}
		dir = "migrations/sqlite"
	case config.DriverPostgres:
		// The pgx driver holds a dedicated connection until Close, which also closes the
		// *sql.DB, so migrations run on a short-lived pool of their own.
		migrateDB, err := sql.Open(s.Driver, s.connStr)
		if err != nil {
			return fmt.Errorf("open migration database: %w", err)
		}
		driver, err = migratepgx.WithInstance(migrateDB, &migratepgx.Config{})
		if err != nil {
			migrateDB.Close()
			return fmt.Errorf("create pgx migration driver: %w", err)
		}
		defer driver.Close()
		dir = "migrations/postgres"
	default:
		return fmt.Errorf("unsupported database driver %q", s.Driver)
	}

	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, s.Driver, driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	s.logger.Info("migrations applied", log.FieldOperation, log.OpMigrate, "version", version, "dirty", dirty)
	return nil
}
