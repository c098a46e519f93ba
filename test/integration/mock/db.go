package mock

import (
	"fmt"
	"slices"
	"sync"

	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/infra/db"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

var (
	dbOnce   sync.Once
	sharedDb *Db
)

// Db is the in-memory SQLite database shared by every scenario.
type Db struct {
	Database *db.Database
	DbConn   *gorm.DB
	tables   []string
}

type tabler interface {
	TableName() string
}

// NewDb opens the shared database on first use and migrates every model.
func NewDb() *Db {
	dbOnce.Do(func() {
		database, err := db.NewSQLiteConnection(":memory:")
		if err != nil {
			panic(fmt.Sprintf("failed to open test database: %s", err))
		}
		if err := database.AutoMigrate(); err != nil {
			panic(fmt.Sprintf("failed to migrate test database: %s", err))
		}

		tables := make([]string, 0, len(model.All()))
		for _, m := range model.All() {
			tables = append(tables, m.(tabler).TableName())
		}
		// Children first so row deletes never trip a reference.
		slices.Reverse(tables)

		sharedDb = &Db{
			Database: database,
			DbConn:   database.DB(),
			tables:   tables,
		}
	})
	return sharedDb
}

// ClearDB empties every table in one transaction.
func (d *Db) ClearDB() error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		for _, table := range d.tables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}

// HasTable reports whether table belongs to the migrated schema.
func (d *Db) HasTable(table string) bool {
	return slices.Contains(d.tables, table)
}

// Count returns the number of rows stored in table.
func (d *Db) Count(table string) (int64, error) {
	if !d.HasTable(table) {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var count int64
	err := d.DbConn.Table(table).Count(&count).Error
	return count, err
}
