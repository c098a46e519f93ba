// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// FindAll retrieves all categories of an owner, defaults first.
	FindAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by name, ignoring case.
	FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Category, error)

	// Create persists new categories.
	Create(ctx context.Context, categories ...*entity.Category) error

	// Delete removes a category.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
