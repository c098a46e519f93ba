package localstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// expenseRepository implements adapter.ExpenseRepository.
type expenseRepository struct {
	store *Store
	clock adapter.Clock
}

// NewExpenseRepository creates a new expense repository on the store. clock
// stamps CreatedAt on append.
func NewExpenseRepository(store *Store, clock adapter.Clock) adapter.ExpenseRepository {
	return &expenseRepository{store: store, clock: clock}
}

func (r *expenseRepository) load(ctx context.Context, ownerID uuid.UUID) ([]expenseDoc, error) {
	var docs []expenseDoc
	if _, err := r.store.read(ctx, r.store.Key(ownerID, collectionExpenses), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindAll returns every stored expense in insertion order.
func (r *expenseRepository) FindAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Expense, error) {
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	expenses := make([]*entity.Expense, len(docs))
	for i, d := range docs {
		expenses[i] = d.toEntity(ownerID)
	}
	return expenses, nil
}

// Append stamps the expense and rewrites the collection with it at the end.
func (r *expenseRepository) Append(ctx context.Context, expense *entity.Expense) error {
	docs, err := r.load(ctx, expense.OwnerID)
	if err != nil {
		return err
	}
	expense.ID = uuid.New()
	expense.CreatedAt = r.clock.Now().UTC()
	docs = append(docs, expenseToDoc(expense))
	return r.store.write(ctx, r.store.Key(expense.OwnerID, collectionExpenses), docs)
}

// categoryRepository implements adapter.CategoryRepository.
type categoryRepository struct {
	store *Store
}

// NewCategoryRepository creates a new category repository on the store.
func NewCategoryRepository(store *Store) adapter.CategoryRepository {
	return &categoryRepository{store: store}
}

func (r *categoryRepository) load(ctx context.Context, ownerID uuid.UUID) ([]categoryDoc, error) {
	var docs []categoryDoc
	if _, err := r.store.read(ctx, r.store.Key(ownerID, collectionCategories), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindAll returns the stored categories in display order.
func (r *categoryRepository) FindAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Category, error) {
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	categories := make([]*entity.Category, len(docs))
	for i, d := range docs {
		categories[i] = d.toEntity(ownerID)
	}
	return categories, nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Category, error) {
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.ID == id {
			return d.toEntity(ownerID), nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

// FindByName retrieves a category by name, ignoring case.
func (r *categoryRepository) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Category, error) {
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if strings.EqualFold(d.Name, name) {
			return d.toEntity(ownerID), nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

// Create appends categories to the owner's list.
func (r *categoryRepository) Create(ctx context.Context, categories ...*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}
	ownerID := categories[0].OwnerID
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, c := range categories {
		docs = append(docs, categoryToDoc(c))
	}
	return r.store.write(ctx, r.store.Key(ownerID, collectionCategories), docs)
}

// Delete removes a category from the owner's list.
func (r *categoryRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return err
	}
	for i, d := range docs {
		if d.ID == id {
			docs = append(docs[:i], docs[i+1:]...)
			return r.store.write(ctx, r.store.Key(ownerID, collectionCategories), docs)
		}
	}
	return domainerror.ErrCategoryNotFound
}

// cardRepository implements adapter.CardRepository.
type cardRepository struct {
	store *Store
}

// NewCardRepository creates a new card repository on the store.
func NewCardRepository(store *Store) adapter.CardRepository {
	return &cardRepository{store: store}
}

func (r *cardRepository) load(ctx context.Context, ownerID uuid.UUID) ([]cardDoc, error) {
	var docs []cardDoc
	if _, err := r.store.read(ctx, r.store.Key(ownerID, collectionCards), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindAll returns the stored cards.
func (r *cardRepository) FindAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Card, error) {
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	cards := make([]*entity.Card, len(docs))
	for i, d := range docs {
		cards[i] = d.toEntity(ownerID)
	}
	return cards, nil
}

// FindByID retrieves a card by its ID.
func (r *cardRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Card, error) {
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.ID == id {
			return d.toEntity(ownerID), nil
		}
	}
	return nil, domainerror.ErrCardNotFound
}

// Create appends a card to the owner's list.
func (r *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	docs, err := r.load(ctx, card.OwnerID)
	if err != nil {
		return err
	}
	docs = append(docs, cardToDoc(card))
	return r.store.write(ctx, r.store.Key(card.OwnerID, collectionCards), docs)
}

// Delete removes a card from the owner's list.
func (r *cardRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return err
	}
	for i, d := range docs {
		if d.ID == id {
			docs = append(docs[:i], docs[i+1:]...)
			return r.store.write(ctx, r.store.Key(ownerID, collectionCards), docs)
		}
	}
	return domainerror.ErrCardNotFound
}

// budgetRepository implements adapter.BudgetRepository.
type budgetRepository struct {
	store *Store
}

// NewBudgetRepository creates a new budget repository on the store.
func NewBudgetRepository(store *Store) adapter.BudgetRepository {
	return &budgetRepository{store: store}
}

func (r *budgetRepository) load(ctx context.Context, ownerID uuid.UUID) ([]budgetDoc, error) {
	var docs []budgetDoc
	if _, err := r.store.read(ctx, r.store.Key(ownerID, collectionBudgets), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindAll returns the stored budgets in creation order.
func (r *budgetRepository) FindAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Budget, error) {
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	budgets := make([]*entity.Budget, len(docs))
	for i, d := range docs {
		budgets[i] = d.toEntity(ownerID)
	}
	return budgets, nil
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Budget, error) {
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.ID == id {
			return d.toEntity(ownerID), nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

// ExistsByCategoryAndPeriod checks if a budget already covers the pair.
func (r *budgetRepository) ExistsByCategoryAndPeriod(ctx context.Context, ownerID uuid.UUID, categoryName string, period entity.BudgetPeriod) (bool, error) {
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return false, err
	}
	for _, d := range docs {
		if d.CategoryName == categoryName && d.Period == string(period) {
			return true, nil
		}
	}
	return false, nil
}

// Create appends a budget to the owner's list.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	docs, err := r.load(ctx, budget.OwnerID)
	if err != nil {
		return err
	}
	docs = append(docs, budgetToDoc(budget))
	return r.store.write(ctx, r.store.Key(budget.OwnerID, collectionBudgets), docs)
}

// Delete removes a budget from the owner's list.
func (r *budgetRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	docs, err := r.load(ctx, ownerID)
	if err != nil {
		return err
	}
	for i, d := range docs {
		if d.ID == id {
			docs = append(docs[:i], docs[i+1:]...)
			return r.store.write(ctx, r.store.Key(ownerID, collectionBudgets), docs)
		}
	}
	return domainerror.ErrBudgetNotFound
}

// spendingLimitRepository implements adapter.SpendingLimitRepository.
type spendingLimitRepository struct {
	store *Store
}

// NewSpendingLimitRepository creates a new spending limit repository on the store.
func NewSpendingLimitRepository(store *Store) adapter.SpendingLimitRepository {
	return &spendingLimitRepository{store: store}
}

// Find returns the stored limit. A document without a positive amount and a
// known period reads as absent, like any other malformed document.
func (r *spendingLimitRepository) Find(ctx context.Context, ownerID uuid.UUID) (*entity.SpendingLimit, error) {
	key := r.store.Key(ownerID, collectionLimit)
	var doc limitDoc
	found, err := r.store.read(ctx, key, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerror.ErrSpendingLimitNotFound
	}
	period := entity.BudgetPeriod(doc.Period)
	if !doc.Amount.IsPositive() || !period.IsValid() {
		slog.Warn("Discarding malformed stored document", "key", key, "amount", doc.Amount.String(), "period", doc.Period)
		return nil, domainerror.ErrSpendingLimitNotFound
	}
	return &entity.SpendingLimit{
		OwnerID:   ownerID,
		Amount:    doc.Amount,
		Period:    period,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// Save overwrites the stored limit.
func (r *spendingLimitRepository) Save(ctx context.Context, limit *entity.SpendingLimit) error {
	return r.store.write(ctx, r.store.Key(limit.OwnerID, collectionLimit), limitDoc{
		Amount:    limit.Amount,
		Period:    string(limit.Period),
		UpdatedAt: limit.UpdatedAt,
	})
}

// achievementRepository implements adapter.AchievementRepository.
type achievementRepository struct {
	store *Store
}

// NewAchievementRepository creates a new achievement repository on the store.
func NewAchievementRepository(store *Store) adapter.AchievementRepository {
	return &achievementRepository{store: store}
}

// Find returns the stored ledger.
func (r *achievementRepository) Find(ctx context.Context, ownerID uuid.UUID) (*entity.AchievementState, error) {
	var doc achievementDoc
	found, err := r.store.read(ctx, r.store.Key(ownerID, collectionAchievements), &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerror.ErrAchievementStateNotFound
	}
	return doc.toEntity(ownerID), nil
}

// Save overwrites the stored ledger.
func (r *achievementRepository) Save(ctx context.Context, state *entity.AchievementState) error {
	return r.store.write(ctx, r.store.Key(state.OwnerID, collectionAchievements), achievementToDoc(state))
}

// insightCursorRepository implements adapter.InsightCursorRepository.
type insightCursorRepository struct {
	store *Store
}

// NewInsightCursorRepository creates a new insight cursor repository on the store.
func NewInsightCursorRepository(store *Store) adapter.InsightCursorRepository {
	return &insightCursorRepository{store: store}
}

// GetIndex returns the stored rotation index. A non-numeric value reads as absent.
func (r *insightCursorRepository) GetIndex(ctx context.Context, ownerID uuid.UUID) (int, bool, error) {
	key := r.store.Key(ownerID, collectionInsightIndex)
	raw, err := r.store.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Discarding malformed stored document", "key", key, "error", err)
		return 0, false, nil
	}
	return index, true, nil
}

// SetIndex overwrites the stored rotation index.
func (r *insightCursorRepository) SetIndex(ctx context.Context, ownerID uuid.UUID, index int) error {
	key := r.store.Key(ownerID, collectionInsightIndex)
	if err := r.store.client.Set(ctx, key, strconv.Itoa(index), 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
