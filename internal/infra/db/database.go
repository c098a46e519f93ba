// Package db opens the relational ledger stores.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

const (
	slowQueryThreshold = 200 * time.Millisecond
	pingTimeout        = 2 * time.Second
)

// Database is an open GORM connection and the driver behind it.
type Database struct {
	db     *gorm.DB
	driver string
}

// open connects through dialector with GORM logging routed to slog. Only
// slow queries and errors are reported.
func open(dialector gorm.Dialector) (*Database, error) {
	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(
			slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
			logger.Config{
				SlowThreshold:             slowQueryThreshold,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialector.Name(), err)
	}
	return &Database{db: gdb, driver: dialector.Name()}, nil
}

func (d *Database) DB() *gorm.DB {
	return d.db
}

// Driver returns the GORM dialect name, "postgres" or "sqlite".
func (d *Database) Driver() string {
	return d.driver
}

// Ping checks the connection within ctx.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// HealthCheck pings with a short timeout and logs failures.
func (d *Database) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := d.Ping(ctx); err != nil {
		slog.Error("Database health check failed", "driver", d.driver, "error", err)
		return false
	}
	return true
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close %s database: %w", d.driver, err)
	}
	slog.Debug("Database connection closed", "driver", d.driver)
	return nil
}

// AutoMigrate creates or updates every ledger table.
func (d *Database) AutoMigrate() error {
	if err := d.db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}
