// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewExpenseRepository creates a new expense repository instance. clock
// stamps CreatedAt on append.
func NewExpenseRepository(db *gorm.DB, clock adapter.Clock) adapter.ExpenseRepository {
	return &expenseRepository{db: db, clock: clock}
}

// FindAll returns every expense of the owner in insertion order.
func (r *expenseRepository) FindAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("seq ASC, created_at ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// Append stamps the expense with an ID and creation time and inserts it
// after the owner's last row.
func (r *expenseRepository) Append(ctx context.Context, expense *entity.Expense) error {
	expense.ID = uuid.New()
	expense.CreatedAt = r.clock.Now().UTC()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last struct{ Seq *int64 }
		if err := tx.Model(&model.ExpenseModel{}).
			Where("owner_id = ?", expense.OwnerID).
			Select("MAX(seq) AS seq").
			Scan(&last).Error; err != nil {
			return err
		}

		row := model.ExpenseFromEntity(expense)
		if last.Seq != nil {
			row.Seq = *last.Seq + 1
		}
		return tx.Create(row).Error
	})
}
