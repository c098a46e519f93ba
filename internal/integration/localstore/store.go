// Package localstore implements the repository interfaces on a key-value
// store, one JSON document per owner collection.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "ledger"

// Collection names, used as the last key segment.
const (
	collectionExpenses     = "expenses"
	collectionCategories   = "categories"
	collectionCards        = "cards"
	collectionLimit        = "limit"
	collectionBudgets      = "budgets"
	collectionAchievements = "achievements"
	collectionInsightIndex = "insight_index"
)

// Store wraps a redis client with JSON document helpers.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a store writing under DefaultPrefix.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client, prefix: DefaultPrefix}
}

// Key returns the document key of an owner collection.
func (s *Store) Key(ownerID uuid.UUID, collection string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, ownerID, collection)
}

// read decodes the document at key into dest. Missing and malformed documents
// both report false; malformed ones are logged and otherwise ignored.
func (s *Store) read(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		slog.Warn("Discarding malformed stored document", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *Store) write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
