package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/infra/cache"
	"github.com/pocket-ledger/backend/internal/infra/db"
	"github.com/pocket-ledger/backend/internal/integration/localstore"
	"github.com/pocket-ledger/backend/internal/integration/persistence"
)

// Store is an opened record store plus the connection that backs it. Exactly
// one of Database and Redis is set.
type Store struct {
	Driver       string
	Database     *db.Database
	Redis        *redis.Client
	Repositories workspace.Repositories

	extra []func() error
}

// OpenStore connects the backend named by cfg.Store.Driver and builds the
// workspace repositories on top of it. clock stamps appended expenses.
func OpenStore(ctx context.Context, cfg *config.Config, clock adapter.Clock) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		database, err := db.NewPostgresConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		return newRelationalStore(cfg.Store.Driver, database, clock)
	case config.StoreDriverSQLite:
		database, err := db.NewSQLiteConnection(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		return newRelationalStore(cfg.Store.Driver, database, clock)
	case config.StoreDriverRedis:
		client, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewKeyValueStore(client, clock), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newRelationalStore(driver string, database *db.Database, clock adapter.Clock) (*Store, error) {
	if err := database.AutoMigrate(); err != nil {
		_ = database.Close()
		return nil, err
	}
	return NewRelationalStore(driver, database, clock), nil
}

// NewRelationalStore wires the GORM repositories over an open database.
func NewRelationalStore(driver string, database *db.Database, clock adapter.Clock) *Store {
	gdb := database.DB()
	return &Store{
		Driver:   driver,
		Database: database,
		Repositories: workspace.Repositories{
			Expenses:      persistence.NewExpenseRepository(gdb, clock),
			Categories:    persistence.NewCategoryRepository(gdb),
			Cards:         persistence.NewCardRepository(gdb),
			Budgets:       persistence.NewBudgetRepository(gdb),
			Limits:        persistence.NewSpendingLimitRepository(gdb),
			Achievements:  persistence.NewAchievementRepository(gdb),
			InsightCursor: persistence.NewInsightCursorRepository(gdb),
		},
	}
}

// NewKeyValueStore wires the document repositories over a Redis client.
func NewKeyValueStore(client *redis.Client, clock adapter.Clock) *Store {
	kv := localstore.NewStore(client)
	return &Store{
		Driver: config.StoreDriverRedis,
		Redis:  client,
		Repositories: workspace.Repositories{
			Expenses:      localstore.NewExpenseRepository(kv, clock),
			Categories:    localstore.NewCategoryRepository(kv),
			Cards:         localstore.NewCardRepository(kv),
			Budgets:       localstore.NewBudgetRepository(kv),
			Limits:        localstore.NewSpendingLimitRepository(kv),
			Achievements:  localstore.NewAchievementRepository(kv),
			InsightCursor: localstore.NewInsightCursorRepository(kv),
		},
	}
}

// SupportsAccounts reports whether users and refresh tokens can be stored.
func (s *Store) SupportsAccounts() bool {
	return s.Database != nil
}

// HealthCheck pings the backing connection.
func (s *Store) HealthCheck() bool {
	if s.Database != nil {
		return s.Database.HealthCheck()
	}
	if s.Redis != nil {
		return cache.HealthCheck(s.Redis)()
	}
	return false
}

// Close releases the backing connection and any auxiliary clients.
func (s *Store) Close() error {
	for _, closeFn := range s.extra {
		if err := closeFn(); err != nil {
			slog.Error("Failed to close auxiliary connection", "error", err)
		}
	}
	if s.Database != nil {
		return s.Database.Close()
	}
	if s.Redis != nil {
		return s.Redis.Close()
	}
	return nil
}
