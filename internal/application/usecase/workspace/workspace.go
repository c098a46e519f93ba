// Package workspace loads the per-owner application state that every
// derived-state computation reads.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// Workspace is a fresh snapshot of everything an owner has stored. Engines
// receive it by pointer and never reach for storage themselves.
type Workspace struct {
	OwnerID      uuid.UUID
	Expenses     []*entity.Expense
	Categories   []*entity.Category
	Cards        []*entity.Card
	Limit        *entity.SpendingLimit
	Budgets      []*entity.Budget
	Achievements *entity.AchievementState
	InsightIndex int
}

// Repositories groups the storage collaborators a workspace is built from.
type Repositories struct {
	Expenses      adapter.ExpenseRepository
	Categories    adapter.CategoryRepository
	Cards         adapter.CardRepository
	Budgets       adapter.BudgetRepository
	Limits        adapter.SpendingLimitRepository
	Achievements  adapter.AchievementRepository
	InsightCursor adapter.InsightCursorRepository
}

// Loader builds workspaces, seeding absent sub-collections on first access.
type Loader struct {
	repos Repositories
}

// NewLoader creates a new Loader instance.
func NewLoader(repos Repositories) *Loader {
	return &Loader{repos: repos}
}

// Repositories exposes the underlying collaborators to use cases that write.
func (l *Loader) Repositories() Repositories {
	return l.repos
}

// Initialize seeds every absent sub-collection of an owner. It is idempotent.
func (l *Loader) Initialize(ctx context.Context, ownerID uuid.UUID) error {
	_, err := l.Load(ctx, ownerID)
	return err
}

// Load reads every sub-collection of an owner, seeding defaults where nothing
// is stored yet.
func (l *Loader) Load(ctx context.Context, ownerID uuid.UUID) (*Workspace, error) {
	expenses, err := l.repos.Expenses.FindAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	categories, err := l.loadCategories(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	cards, err := l.repos.Cards.FindAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}

	limit, err := l.loadLimit(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	budgets, err := l.repos.Budgets.FindAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	achievements, err := l.loadAchievements(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	index, err := l.loadInsightIndex(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &Workspace{
		OwnerID:      ownerID,
		Expenses:     expenses,
		Categories:   categories,
		Cards:        cards,
		Limit:        limit,
		Budgets:      budgets,
		Achievements: achievements,
		InsightIndex: index,
	}, nil
}

// Default categories cannot be deleted, so an empty list means nothing was
// ever seeded.
func (l *Loader) loadCategories(ctx context.Context, ownerID uuid.UUID) ([]*entity.Category, error) {
	categories, err := l.repos.Categories.FindAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if len(categories) > 0 {
		return categories, nil
	}

	defaults := entity.DefaultCategories(ownerID)
	if err := l.repos.Categories.Create(ctx, defaults...); err != nil {
		return nil, fmt.Errorf("failed to seed default categories: %w", err)
	}
	slog.Info("Seeded default categories", "owner_id", ownerID, "count", len(defaults))
	return defaults, nil
}

func (l *Loader) loadLimit(ctx context.Context, ownerID uuid.UUID) (*entity.SpendingLimit, error) {
	limit, err := l.repos.Limits.Find(ctx, ownerID)
	if err == nil {
		return limit, nil
	}
	if !errors.Is(err, domainerror.ErrSpendingLimitNotFound) {
		return nil, fmt.Errorf("failed to load spending limit: %w", err)
	}

	limit = entity.DefaultSpendingLimit(ownerID)
	if err := l.repos.Limits.Save(ctx, limit); err != nil {
		return nil, fmt.Errorf("failed to seed spending limit: %w", err)
	}
	slog.Info("Seeded spending limit", "owner_id", ownerID, "amount", limit.Amount.String(), "period", limit.Period)
	return limit, nil
}

func (l *Loader) loadAchievements(ctx context.Context, ownerID uuid.UUID) (*entity.AchievementState, error) {
	state, err := l.repos.Achievements.Find(ctx, ownerID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, domainerror.ErrAchievementStateNotFound) {
		return nil, fmt.Errorf("failed to load achievement state: %w", err)
	}

	state = entity.NewAchievementState(ownerID)
	if err := l.repos.Achievements.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to seed achievement state: %w", err)
	}
	return state, nil
}

func (l *Loader) loadInsightIndex(ctx context.Context, ownerID uuid.UUID) (int, error) {
	index, ok, err := l.repos.InsightCursor.GetIndex(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to load insight index: %w", err)
	}
	if ok {
		return index, nil
	}
	if err := l.repos.InsightCursor.SetIndex(ctx, ownerID, 0); err != nil {
		return 0, fmt.Errorf("failed to seed insight index: %w", err)
	}
	return 0, nil
}
