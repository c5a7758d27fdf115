package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/carson-networks/budget-analytics/internal/config"
	"github.com/carson-networks/budget-analytics/internal/storage/migrations"
)

// MigrationResult reports the schema version before and after Migrate.
type MigrationResult struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// Migrate applies every pending up migration for the storage backend. It uses
// its own connection because closing a migrate instance closes the database.
func (s *Storage) Migrate() (*MigrationResult, error) {
	var (
		driverName string
		schemaFS   fs.FS
		openDriver func(*sql.DB) (database.Driver, error)
	)

	switch s.backend {
	case config.StoreBackendPostgres:
		driverName = "postgres"
		schemaFS, _ = fs.Sub(migrations.Postgres, "postgres")
		openDriver = func(db *sql.DB) (database.Driver, error) {
			return postgres.WithInstance(db, &postgres.Config{})
		}
	case config.StoreBackendSQLite:
		driverName = "sqlite"
		schemaFS, _ = fs.Sub(migrations.SQLite, "sqlite")
		openDriver = func(db *sql.DB) (database.Driver, error) {
			return sqlite.WithInstance(db, &sqlite.Config{})
		}
	default:
		return nil, fmt.Errorf("unknown store backend %q", s.backend)
	}

	migrateDB, err := sql.Open(driverName, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration database: %w", err)
	}

	driver, err := openDriver(migrateDB)
	if err != nil {
		migrateDB.Close()
		return nil, fmt.Errorf("create %s driver: %w", driverName, err)
	}

	source, err := iofs.New(schemaFS, ".")
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driverName, driver)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	result := &MigrationResult{}
	result.PreMigrationVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("read pre-migration version: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	result.PostMigrationVersion, _, err = m.Version()
	if err != nil {
		return nil, fmt.Errorf("read post-migration version: %w", err)
	}

	return result, nil
}
