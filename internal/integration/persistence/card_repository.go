// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

// cardRepository implements the adapter.CardRepository interface.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository instance.
func NewCardRepository(db *gorm.DB) adapter.CardRepository {
	return &cardRepository{db: db}
}

// FindAll retrieves all cards of an owner.
func (r *cardRepository) FindAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Card, error) {
	var cardModels []model.CardModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&cardModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cards := make([]*entity.Card, len(cardModels))
	for i, cm := range cardModels {
		cards[i] = cm.ToEntity()
	}
	return cards, nil
}

// FindByID retrieves a card by its ID.
func (r *cardRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Card, error) {
	var cardModel model.CardModel
	result := r.db.WithContext(ctx).Where("owner_id = ? AND id = ?", ownerID, id).First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCardNotFound
		}
		return nil, result.Error
	}
	return cardModel.ToEntity(), nil
}

// Create persists a new card.
func (r *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	return r.db.WithContext(ctx).Create(model.CardFromEntity(card)).Error
}

// Delete removes a card.
func (r *cardRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CardModel{}, "owner_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCardNotFound
	}
	return nil
}
