package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// DeleteCardInput represents the input for card deletion.
type DeleteCardInput struct {
	OwnerID uuid.UUID
	CardID  uuid.UUID
}

// DeleteCardUseCase handles card deletion. Expenses keep their copied
// nickname, so there is no usage check.
type DeleteCardUseCase struct {
	cardRepo adapter.CardRepository
}

// NewDeleteCardUseCase creates a new DeleteCardUseCase instance.
func NewDeleteCardUseCase(cardRepo adapter.CardRepository) *DeleteCardUseCase {
	return &DeleteCardUseCase{cardRepo: cardRepo}
}

// Execute performs the card deletion.
func (uc *DeleteCardUseCase) Execute(ctx context.Context, input DeleteCardInput) error {
	if err := uc.cardRepo.Delete(ctx, input.OwnerID, input.CardID); err != nil {
		if errors.Is(err, domainerror.ErrCardNotFound) {
			return domainerror.NewCardError(
				domainerror.ErrCodeCardNotFound,
				"card not found",
				domainerror.ErrCardNotFound,
			)
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}
