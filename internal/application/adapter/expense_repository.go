// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ExpenseRepository is the append-only record store. No update or delete is
// exposed to the application.
type ExpenseRepository interface {
	// FindAll returns every expense of the owner in insertion order. Absent or
	// unreadable data yields an empty slice.
	FindAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Expense, error)

	// Append assigns ID and CreatedAt to the expense and persists it.
	Append(ctx context.Context, expense *entity.Expense) error
}
