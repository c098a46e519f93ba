// Package card contains payment card use cases.
package card

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// lastFourRegex is compiled once at package level for performance.
var lastFourRegex = regexp.MustCompile(`^\d{4}$`)

// CreateCardInput represents the input for card creation.
type CreateCardInput struct {
	OwnerID  uuid.UUID
	Nickname string
	LastFour string
}

// CreateCardUseCase handles card creation logic.
type CreateCardUseCase struct {
	cardRepo adapter.CardRepository
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(cardRepo adapter.CardRepository) *CreateCardUseCase {
	return &CreateCardUseCase{cardRepo: cardRepo}
}

// Execute performs the card creation.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*entity.Card, error) {
	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardNicknameMissing,
			"card nickname is required",
			domainerror.ErrCardNicknameRequired,
		)
	}

	if !lastFourRegex.MatchString(input.LastFour) {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeInvalidLastFour,
			"last four must be exactly 4 digits",
			domainerror.ErrInvalidLastFour,
		)
	}

	card := entity.NewCard(input.OwnerID, nickname, input.LastFour)
	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return card, nil
}

// ListCardsUseCase handles listing cards.
type ListCardsUseCase struct {
	cardRepo adapter.CardRepository
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(cardRepo adapter.CardRepository) *ListCardsUseCase {
	return &ListCardsUseCase{cardRepo: cardRepo}
}

// Execute lists the owner's cards.
func (uc *ListCardsUseCase) Execute(ctx context.Context, ownerID uuid.UUID) ([]*entity.Card, error) {
	cards, err := uc.cardRepo.FindAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}
