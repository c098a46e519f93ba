// Package testutil provides in-memory storage collaborators and a fixed clock
// for use case tests.
package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// Clock is a settable clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock frozen at now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the frozen instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// MemStore implements every repository interface in memory. It is not scoped
// per owner beyond filtering on OwnerID.
type MemStore struct {
	mu           sync.Mutex
	clock        func() time.Time
	expenses     []*entity.Expense
	categories   []*entity.Category
	cards        []*entity.Card
	budgets      []*entity.Budget
	limits       map[uuid.UUID]*entity.SpendingLimit
	achievements map[uuid.UUID]*entity.AchievementState
	insightIndex map[uuid.UUID]int

	// AppendErr, when set, is returned by Append.
	AppendErr error
}

// NewMemStore creates an empty store whose appends are stamped by clock.
func NewMemStore(clock func() time.Time) *MemStore {
	if clock == nil {
		clock = time.Now
	}
	return &MemStore{
		clock:        clock,
		limits:       map[uuid.UUID]*entity.SpendingLimit{},
		achievements: map[uuid.UUID]*entity.AchievementState{},
		insightIndex: map[uuid.UUID]int{},
	}
}

// Repositories returns the store wired as every workspace collaborator.
func (s *MemStore) Repositories() workspace.Repositories {
	return workspace.Repositories{
		Expenses:      expenseRepo{s},
		Categories:    categoryRepo{s},
		Cards:         cardRepo{s},
		Budgets:       budgetRepo{s},
		Limits:        limitRepo{s},
		Achievements:  achievementRepo{s},
		InsightCursor: cursorRepo{s},
	}
}

// AddExpense stores an expense directly, bypassing Append stamping unless the
// fields are zero.
func (s *MemStore) AddExpense(e *entity.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.clock()
	}
	cp := *e
	s.expenses = append(s.expenses, &cp)
}

// ExpenseCount returns the number of stored expenses.
func (s *MemStore) ExpenseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expenses)
}

type expenseRepo struct{ s *MemStore }

func (r expenseRepo) FindAll(_ context.Context, ownerID uuid.UUID) ([]*entity.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Expense{}
	for _, e := range r.s.expenses {
		if e.OwnerID == ownerID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r expenseRepo) Append(_ context.Context, e *entity.Expense) error {
	if r.s.AppendErr != nil {
		return r.s.AppendErr
	}
	e.ID = uuid.New()
	e.CreatedAt = r.s.clock()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *e
	r.s.expenses = append(r.s.expenses, &cp)
	return nil
}

type categoryRepo struct{ s *MemStore }

func (r categoryRepo) FindAll(_ context.Context, ownerID uuid.UUID) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Category{}
	for _, c := range r.s.categories {
		if c.OwnerID == ownerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r categoryRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.OwnerID == ownerID && c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r categoryRepo) FindByName(_ context.Context, ownerID uuid.UUID, name string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.OwnerID == ownerID && strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r categoryRepo) Create(_ context.Context, categories ...*entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range categories {
		cp := *c
		r.s.categories = append(r.s.categories, &cp)
	}
	return nil
}

func (r categoryRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.categories {
		if c.OwnerID == ownerID && c.ID == id {
			r.s.categories = append(r.s.categories[:i], r.s.categories[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

type cardRepo struct{ s *MemStore }

func (r cardRepo) FindAll(_ context.Context, ownerID uuid.UUID) ([]*entity.Card, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Card{}
	for _, c := range r.s.cards {
		if c.OwnerID == ownerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r cardRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*entity.Card, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.cards {
		if c.OwnerID == ownerID && c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domainerror.ErrCardNotFound
}

func (r cardRepo) Create(_ context.Context, card *entity.Card) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *card
	r.s.cards = append(r.s.cards, &cp)
	return nil
}

func (r cardRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.cards {
		if c.OwnerID == ownerID && c.ID == id {
			r.s.cards = append(r.s.cards[:i], r.s.cards[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrCardNotFound
}

type budgetRepo struct{ s *MemStore }

func (r budgetRepo) FindAll(_ context.Context, ownerID uuid.UUID) ([]*entity.Budget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Budget{}
	for _, b := range r.s.budgets {
		if b.OwnerID == ownerID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r budgetRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*entity.Budget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.budgets {
		if b.OwnerID == ownerID && b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (r budgetRepo) ExistsByCategoryAndPeriod(_ context.Context, ownerID uuid.UUID, categoryName string, period entity.BudgetPeriod) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.budgets {
		if b.OwnerID == ownerID && b.CategoryName == categoryName && b.Period == period {
			return true, nil
		}
	}
	return false, nil
}

func (r budgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *budget
	r.s.budgets = append(r.s.budgets, &cp)
	return nil
}

func (r budgetRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, b := range r.s.budgets {
		if b.OwnerID == ownerID && b.ID == id {
			r.s.budgets = append(r.s.budgets[:i], r.s.budgets[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrBudgetNotFound
}

type limitRepo struct{ s *MemStore }

func (r limitRepo) Find(_ context.Context, ownerID uuid.UUID) (*entity.SpendingLimit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	limit, ok := r.s.limits[ownerID]
	if !ok {
		return nil, domainerror.ErrSpendingLimitNotFound
	}
	cp := *limit
	return &cp, nil
}

func (r limitRepo) Save(_ context.Context, limit *entity.SpendingLimit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *limit
	r.s.limits[limit.OwnerID] = &cp
	return nil
}

type achievementRepo struct{ s *MemStore }

func (r achievementRepo) Find(_ context.Context, ownerID uuid.UUID) (*entity.AchievementState, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	state, ok := r.s.achievements[ownerID]
	if !ok {
		return nil, domainerror.ErrAchievementStateNotFound
	}
	return cloneState(state), nil
}

func (r achievementRepo) Save(_ context.Context, state *entity.AchievementState) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.achievements[state.OwnerID] = cloneState(state)
	return nil
}

type cursorRepo struct{ s *MemStore }

func (r cursorRepo) GetIndex(_ context.Context, ownerID uuid.UUID) (int, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	index, ok := r.s.insightIndex[ownerID]
	return index, ok, nil
}

func (r cursorRepo) SetIndex(_ context.Context, ownerID uuid.UUID, index int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.insightIndex[ownerID] = index
	return nil
}

func cloneState(state *entity.AchievementState) *entity.AchievementState {
	cp := *state
	cp.UnlockedBadges = append([]entity.UnlockedBadge{}, state.UnlockedBadges...)
	cp.Stats = make(map[string]int, len(state.Stats))
	for k, v := range state.Stats {
		cp.Stats[k] = v
	}
	return &cp
}
