// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CardRepository defines the interface for payment card persistence operations.
type CardRepository interface {
	// FindAll retrieves all cards of an owner.
	FindAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Card, error)

	// FindByID retrieves a card by its ID.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Card, error)

	// Create persists a new card.
	Create(ctx context.Context, card *entity.Card) error

	// Delete removes a card.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
