package db

import (
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
)

// NewSQLiteConnection opens a file-backed SQLite database. Use ":memory:"
// for a throwaway ledger.
func NewSQLiteConnection(path string) (*Database, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	database, err := open(sqlite.Open(dsn))
	if err != nil {
		return nil, err
	}

	// One writer at a time; a single connection avoids SQLITE_BUSY.
	sqlDB, err := database.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	slog.Debug("Database connection established", "driver", database.driver, "path", path)
	return database, nil
}
