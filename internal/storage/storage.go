package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/budget-analytics/internal/config"
	"github.com/carson-networks/budget-analytics/internal/storage/sqlconfig"
	"github.com/carson-networks/budget-analytics/internal/storage/sqlite"
)

type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable

	backend string
	dsn     string
}

// NewStorage opens the backend selected by env.StoreBackend.
func NewStorage(env *config.Config) (*Storage, error) {
	switch env.StoreBackend {
	case config.StoreBackendPostgres:
		return OpenPostgres(env.PostgresDSN())
	case config.StoreBackendSQLite:
		return OpenSQLite(env.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", env.StoreBackend)
	}
}

func OpenPostgres(dsn string) (*Storage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(db),
		backend:      config.StoreBackendPostgres,
		dsn:          dsn,
	}, nil
}

func OpenSQLite(path string) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single writer connection avoids SQLITE_BUSY between the operator
	// workers and readers.
	db.SetMaxOpenConns(1)

	return &Storage{
		DB:           db,
		Transactions: sqlite.NewTransactionsTable(db),
		backend:      config.StoreBackendSQLite,
		dsn:          path,
	}, nil
}

func (s *Storage) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
