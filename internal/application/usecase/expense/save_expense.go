// Package expense contains the save and list use cases of the record store.
package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/achievement"
	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// SaveExpenseInput represents the input for logging an expense.
type SaveExpenseInput struct {
	OwnerID     uuid.UUID
	Amount      decimal.Decimal
	Category    string
	PaymentType entity.PaymentType
	CardID      *uuid.UUID
	Date        time.Time // Zero means now
	Description string
}

// SaveExpenseOutput represents everything a save produced.
type SaveExpenseOutput struct {
	Expense       *entity.Expense
	Streak        entity.Streak
	NewlyUnlocked []entity.AchievementDefinition
	Notification  *entity.AchievementDefinition
	BudgetAlert   *budget.Alert
}

// SaveExpenseUseCase appends an expense and then runs the post-save engines.
type SaveExpenseUseCase struct {
	loader   *workspace.Loader
	progress *achievement.RecordProgressUseCase
	clock    adapter.Clock
	events   adapter.EventRecorder
}

// NewSaveExpenseUseCase creates a new SaveExpenseUseCase instance.
func NewSaveExpenseUseCase(
	loader *workspace.Loader,
	progress *achievement.RecordProgressUseCase,
	clock adapter.Clock,
	events adapter.EventRecorder,
) *SaveExpenseUseCase {
	if events == nil {
		events = adapter.NopEventRecorder{}
	}
	return &SaveExpenseUseCase{
		loader:   loader,
		progress: progress,
		clock:    clock,
		events:   events,
	}
}

// Execute validates and appends the expense. Streak and achievement updates
// only run after the append succeeded.
func (uc *SaveExpenseUseCase) Execute(ctx context.Context, input SaveExpenseInput) (*SaveExpenseOutput, error) {
	if input.OwnerID == uuid.Nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"sign in to save expenses",
			domainerror.ErrNotAuthenticated,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	if !input.PaymentType.IsValid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidPaymentType,
			"payment type must be 'cash', 'card' or 'wallet'",
			domainerror.ErrInvalidPaymentType,
		)
	}

	categoryName := strings.TrimSpace(input.Category)
	if categoryName == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"category is required",
			nil,
		)
	}

	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	if !knownCategory(ws.Categories, categoryName) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeUnknownCategory,
			fmt.Sprintf("category %q does not exist", categoryName),
			domainerror.ErrUnknownCategory,
		)
	}

	card, err := uc.resolveCard(ctx, input)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	record := entity.NewExpense(
		input.OwnerID,
		input.Amount,
		categoryName,
		input.PaymentType,
		date,
		strings.TrimSpace(input.Description),
	).WithCard(card)

	if err := uc.loader.Repositories().Expenses.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	uc.events.ExpenseSaved(string(record.PaymentType))
	ws.Expenses = append(ws.Expenses, record)

	progress, err := uc.progress.Execute(ctx, achievement.RecordProgressInput{Workspace: ws})
	if err != nil {
		return nil, err
	}

	alert := budget.EvaluateAlert(ws.Expenses, ws.Budgets, record.Category, now)
	if alert != nil {
		slog.Info("Budget alert raised",
			"owner_id", input.OwnerID,
			"category", alert.CategoryName,
			"period", alert.Period,
			"status", alert.Status,
		)
		uc.events.BudgetAlertRaised(string(alert.Status))
	}

	return &SaveExpenseOutput{
		Expense:       record,
		Streak:        progress.Streak,
		NewlyUnlocked: progress.NewlyUnlocked,
		Notification:  progress.Notification,
		BudgetAlert:   alert,
	}, nil
}

// resolveCard returns the card of a card payment, and nil otherwise.
func (uc *SaveExpenseUseCase) resolveCard(ctx context.Context, input SaveExpenseInput) (*entity.Card, error) {
	if input.PaymentType != entity.PaymentTypeCard {
		return nil, nil
	}

	cardErr := domainerror.NewExpenseError(
		domainerror.ErrCodeCardRequired,
		"choose a saved card for card payments",
		domainerror.ErrCardRequired,
	)
	if input.CardID == nil {
		return nil, cardErr
	}

	card, err := uc.loader.Repositories().Cards.FindByID(ctx, input.OwnerID, *input.CardID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCardNotFound) {
			return nil, cardErr
		}
		return nil, fmt.Errorf("failed to find card: %w", err)
	}
	return card, nil
}

func knownCategory(categories []*entity.Category, name string) bool {
	for _, c := range categories {
		if c.Name == name {
			return true
		}
	}
	return false
}
