package card

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/testutil"
)

func TestCreateCardUseCase(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore(nil)
	uc := NewCreateCardUseCase(store.Repositories().Cards)
	owner := uuid.New()

	tests := []struct {
		name        string
		nickname    string
		lastFour    string
		expectedErr error
	}{
		{"valid", "Travel", "4242", nil},
		{"missing nickname", "  ", "4242", domainerror.ErrCardNicknameRequired},
		{"three digits", "Travel", "424", domainerror.ErrInvalidLastFour},
		{"five digits", "Travel", "42424", domainerror.ErrInvalidLastFour},
		{"letters", "Travel", "42a2", domainerror.ErrInvalidLastFour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := uc.Execute(ctx, CreateCardInput{OwnerID: owner, Nickname: tt.nickname, LastFour: tt.lastFour})
			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if card.Nickname != tt.nickname || card.LastFour != tt.lastFour {
					t.Errorf("unexpected card %+v", card)
				}
				return
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}

	cards, err := NewListCardsUseCase(store.Repositories().Cards).Execute(ctx, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}

	del := NewDeleteCardUseCase(store.Repositories().Cards)
	if err := del.Execute(ctx, DeleteCardInput{OwnerID: owner, CardID: cards[0].ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := del.Execute(ctx, DeleteCardInput{OwnerID: owner, CardID: cards[0].ID}); !errors.Is(err, domainerror.ErrCardNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
