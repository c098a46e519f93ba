package persistence

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
	"github.com/pocket-ledger/backend/internal/testutil"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestExpenseRepository_AppendAndFindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(newTestDB(t), adapter.NewSystemClock(time.UTC))
	owner := uuid.New()
	other := uuid.New()

	amounts := []string{"12.50", "3.00", "40.25"}
	for _, a := range amounts {
		e := entity.NewExpense(owner, decimal.RequireFromString(a), "Coffee", entity.PaymentTypeCash, time.Now().UTC(), "")
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append failed: %v", err)
		}
		if e.ID == uuid.Nil {
			t.Error("expected append to assign an ID")
		}
		if e.CreatedAt.IsZero() {
			t.Error("expected append to assign CreatedAt")
		}
	}
	if err := repo.Append(ctx, entity.NewExpense(other, decimal.NewFromInt(1), "Coffee", entity.PaymentTypeCash, time.Now().UTC(), "")); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	got, err := repo.FindAll(ctx, owner)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(got) != len(amounts) {
		t.Fatalf("expected %d expenses, got %d", len(amounts), len(got))
	}
	for i, a := range amounts {
		if !got[i].Amount.Equal(decimal.RequireFromString(a)) {
			t.Errorf("expense %d: expected amount %s, got %s", i, a, got[i].Amount)
		}
	}
}

func TestExpenseRepository_SameInstantKeepsAppendOrder(t *testing.T) {
	ctx := context.Background()
	frozen := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)
	clock := testutil.NewClock(frozen)
	repo := NewExpenseRepository(newTestDB(t), clock)
	owner := uuid.New()

	categories := []string{"Coffee", "Transport", "Health", "Shopping"}
	for i, c := range categories {
		if i == 2 {
			// wall clock stepped backwards between appends
			clock.Set(frozen.Add(-time.Hour))
		}
		e := entity.NewExpense(owner, decimal.NewFromInt(int64(i+1)), c, entity.PaymentTypeCash, frozen, "")
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append failed: %v", err)
		}
		if !e.CreatedAt.Equal(clock.Now()) {
			t.Errorf("expense %d: expected CreatedAt %v, got %v", i, clock.Now(), e.CreatedAt)
		}
	}

	got, err := repo.FindAll(ctx, owner)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(got) != len(categories) {
		t.Fatalf("expected %d expenses, got %d", len(categories), len(got))
	}
	for i, c := range categories {
		if got[i].Category != c {
			t.Errorf("position %d: expected %s, got %s", i, c, got[i].Category)
		}
	}
}

func TestExpenseRepository_KeepsFullPrecision(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(newTestDB(t), adapter.NewSystemClock(time.UTC))
	owner := uuid.New()

	amount := decimal.RequireFromString("12.345")
	if err := repo.Append(ctx, entity.NewExpense(owner, amount, "Coffee", entity.PaymentTypeCash, time.Now().UTC(), "")); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	got, err := repo.FindAll(ctx, owner)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(got) != 1 || !got[0].Amount.Equal(amount) {
		t.Errorf("expected amount %s to round-trip, got %+v", amount, got)
	}
}

func TestExpenseRepository_CardMetadata(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(newTestDB(t), adapter.NewSystemClock(time.UTC))
	owner := uuid.New()
	card := entity.NewCard(owner, "Travel", "4242")

	e := entity.NewExpense(owner, decimal.NewFromInt(20), "Transport", entity.PaymentTypeCard, time.Now().UTC(), "taxi").WithCard(card)
	if err := repo.Append(ctx, e); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	got, err := repo.FindAll(ctx, owner)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(got))
	}
	if got[0].CardID == nil || *got[0].CardID != card.ID {
		t.Errorf("expected card ID %s, got %v", card.ID, got[0].CardID)
	}
	if got[0].CardNickname != "Travel" {
		t.Errorf("expected nickname Travel, got %q", got[0].CardNickname)
	}
	if got[0].Description != "taxi" {
		t.Errorf("expected description taxi, got %q", got[0].Description)
	}
}

func TestCategoryRepository_DisplayOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))
	owner := uuid.New()

	if err := repo.Create(ctx, entity.DefaultCategories(owner)...); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := repo.Create(ctx, entity.NewCategory(owner, "Books", "book")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.FindAll(ctx, owner)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	want := append(entity.DefaultCategoryNames(), "Books")
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, got[i].Name)
		}
	}
	if !got[0].IsDefault || got[len(got)-1].IsDefault {
		t.Error("expected defaults flagged and custom category unflagged")
	}
}

func TestCategoryRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))
	owner := uuid.New()

	if _, err := repo.FindByName(ctx, owner, "Missing"); !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, owner, uuid.New()); !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, owner, uuid.New()); !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryRepository_NameIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))
	owner := uuid.New()

	if err := repo.Create(ctx, entity.NewCategory(owner, "Coffee", "coffee")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.FindByName(ctx, owner, "  coffee ")
	if err != nil {
		t.Fatalf("find by name failed: %v", err)
	}
	if got.Name != "Coffee" {
		t.Errorf("expected stored spelling Coffee, got %q", got.Name)
	}

	if err := repo.Create(ctx, entity.NewCategory(owner, "COFFEE", "coffee")); err == nil {
		t.Error("expected a name differing only in case to be rejected")
	}
	if err := repo.Create(ctx, entity.NewCategory(uuid.New(), "coffee", "coffee")); err != nil {
		t.Errorf("another owner may reuse the name: %v", err)
	}
}

func TestCardRepository_CreateFindDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewCardRepository(newTestDB(t))
	owner := uuid.New()
	card := entity.NewCard(owner, "Daily", "1234")

	if err := repo.Create(ctx, card); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	found, err := repo.FindByID(ctx, owner, card.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.LastFour != "1234" {
		t.Errorf("expected last four 1234, got %s", found.LastFour)
	}
	if _, err := repo.FindByID(ctx, uuid.New(), card.ID); !errors.Is(err, domainerror.ErrCardNotFound) {
		t.Errorf("expected other owner lookup to fail, got %v", err)
	}
	if err := repo.Delete(ctx, owner, card.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	cards, err := repo.FindAll(ctx, owner)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("expected no cards, got %d", len(cards))
	}
}

func TestBudgetRepository_Uniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(newTestDB(t))
	owner := uuid.New()

	b := entity.NewBudget(owner, "Coffee", decimal.NewFromInt(50), entity.BudgetPeriodWeek)
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	tests := []struct {
		name     string
		category string
		period   entity.BudgetPeriod
		expected bool
	}{
		{name: "same pair", category: "Coffee", period: entity.BudgetPeriodWeek, expected: true},
		{name: "other period", category: "Coffee", period: entity.BudgetPeriodMonth, expected: false},
		{name: "other category", category: "Health", period: entity.BudgetPeriodWeek, expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := repo.ExistsByCategoryAndPeriod(ctx, owner, tt.category, tt.period)
			if err != nil {
				t.Fatalf("exists failed: %v", err)
			}
			if exists != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, exists)
			}
		})
	}

	if err := repo.Delete(ctx, owner, b.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(ctx, owner, b.ID); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected ErrBudgetNotFound on second delete, got %v", err)
	}
}

func TestSpendingLimitRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewSpendingLimitRepository(newTestDB(t))
	owner := uuid.New()

	if _, err := repo.Find(ctx, owner); !errors.Is(err, domainerror.ErrSpendingLimitNotFound) {
		t.Fatalf("expected ErrSpendingLimitNotFound, got %v", err)
	}
	if err := repo.Save(ctx, entity.DefaultSpendingLimit(owner)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	updated := entity.DefaultSpendingLimit(owner)
	updated.Amount = decimal.NewFromInt(250)
	updated.Period = entity.BudgetPeriodWeek
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := repo.Find(ctx, owner)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !got.Amount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected amount 250, got %s", got.Amount)
	}
	if got.Period != entity.BudgetPeriodWeek {
		t.Errorf("expected week period, got %s", got.Period)
	}
}

func TestAchievementRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewAchievementRepository(newTestDB(t))
	owner := uuid.New()
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	state := entity.NewAchievementState(owner)
	state.Unlock("first_expense", now)
	state.IncrementStat(entity.StatExpensesLogged)
	state.Streak = entity.Streak{CurrentStreak: 2, LongestStreak: 5, LastLogDate: "2025-03-04"}
	state.HasUnseen = true

	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	state.SetShowcased("first_expense", false)
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := repo.Find(ctx, owner)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	badge, ok := got.Badge("first_expense")
	if !ok {
		t.Fatal("expected first_expense to be unlocked")
	}
	if badge.Showcased {
		t.Error("expected badge to be unshowcased after second save")
	}
	if !badge.UnlockedAt.Equal(now) {
		t.Errorf("expected unlock time %v, got %v", now, badge.UnlockedAt)
	}
	if got.Stats[entity.StatExpensesLogged] != 1 {
		t.Errorf("expected expenses_logged 1, got %d", got.Stats[entity.StatExpensesLogged])
	}
	if got.Streak.LongestStreak != 5 || got.Streak.LastLogDate != "2025-03-04" {
		t.Errorf("unexpected streak %+v", got.Streak)
	}
	if !got.HasUnseen {
		t.Error("expected HasUnseen to persist")
	}
}

func TestInsightCursorRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInsightCursorRepository(newTestDB(t))
	owner := uuid.New()

	if _, ok, err := repo.GetIndex(ctx, owner); err != nil || ok {
		t.Fatalf("expected no stored index, got ok=%v err=%v", ok, err)
	}
	for _, i := range []int{2, 3} {
		if err := repo.SetIndex(ctx, owner, i); err != nil {
			t.Fatalf("set index failed: %v", err)
		}
	}
	index, ok, err := repo.GetIndex(ctx, owner)
	if err != nil || !ok {
		t.Fatalf("expected stored index, got ok=%v err=%v", ok, err)
	}
	if index != 3 {
		t.Errorf("expected index 3, got %d", index)
	}
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	accounts := NewAccountRepository(newTestDB(t))

	user := entity.NewUser("Ada@Example.com ", "Ada", "hash")
	if err := accounts.Register(ctx, user); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	dup := entity.NewUser("ada@example.com", "Other Ada", "hash")
	if err := accounts.Register(ctx, dup); !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}

	found, err := accounts.FindByEmail(ctx, "ADA@example.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.ID != user.ID || found.Email != "ada@example.com" {
		t.Errorf("unexpected account %+v", found)
	}
	if found.LastLoginAt != nil {
		t.Error("expected no login recorded yet")
	}

	at := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	if err := accounts.TouchLogin(ctx, user.ID, at); err != nil {
		t.Fatalf("touch login failed: %v", err)
	}
	found, _ = accounts.FindByEmail(ctx, "ada@example.com")
	if found.LastLoginAt == nil || !found.LastLoginAt.Equal(at) {
		t.Errorf("expected last login %v, got %v", at, found.LastLoginAt)
	}

	if _, err := accounts.FindByEmail(ctx, "bob@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	sessions := NewSessionRepository(db)
	owner := uuid.New()
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	stale := &entity.Session{ID: "stale", OwnerID: owner, ExpiresAt: now.Add(-time.Minute), CreatedAt: now.Add(-time.Hour)}
	if err := db.Create(model.SessionFromEntity(stale)).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	live := &entity.Session{ID: "live", OwnerID: owner, ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	if err := sessions.Open(ctx, live); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, err := sessions.Find(ctx, "stale"); !errors.Is(err, domainerror.ErrSessionNotFound) {
		t.Errorf("expected expired session to be purged, got %v", err)
	}

	found, err := sessions.Find(ctx, "live")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !found.Active(now) {
		t.Error("expected session to be active")
	}

	for i := 0; i < 2; i++ {
		if err := sessions.Revoke(ctx, "live", now.Add(time.Minute)); err != nil {
			t.Fatalf("revoke %d failed: %v", i, err)
		}
	}
	found, _ = sessions.Find(ctx, "live")
	if found.Active(now) {
		t.Error("expected session to be revoked")
	}
	if !found.RevokedAt.Equal(now.Add(time.Minute)) {
		t.Errorf("second revoke should keep the first timestamp, got %v", found.RevokedAt)
	}

	if err := sessions.Revoke(ctx, "missing", now); err != nil {
		t.Errorf("revoking an unknown session should not fail, got %v", err)
	}
}
