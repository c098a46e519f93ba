package localstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/testutil"
)

var wallClock = adapter.NewSystemClock(time.UTC)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client), mr
}

func TestStore_Key(t *testing.T) {
	store, _ := newTestStore(t)
	owner := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	got := store.Key(owner, collectionExpenses)
	want := "ledger:00000000-0000-0000-0000-000000000001:expenses"
	if got != want {
		t.Errorf("expected key %q, got %q", want, got)
	}
}

func TestExpenseRepository_AppendKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)
	repo := NewExpenseRepository(store, wallClock)
	owner := uuid.New()

	for _, amount := range []int64{5, 7, 9} {
		e := entity.NewExpense(owner, decimal.NewFromInt(amount), "Coffee", entity.PaymentTypeCash, time.Now().UTC(), "")
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append failed: %v", err)
		}
		if e.ID == uuid.Nil || e.CreatedAt.IsZero() {
			t.Error("expected append to stamp ID and CreatedAt")
		}
	}

	got, err := repo.FindAll(ctx, owner)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(got))
	}
	for i, amount := range []int64{5, 7, 9} {
		if !got[i].Amount.Equal(decimal.NewFromInt(amount)) {
			t.Errorf("position %d: expected %d, got %s", i, amount, got[i].Amount)
		}
		if got[i].OwnerID != owner {
			t.Errorf("position %d: expected owner to be restored from the key", i)
		}
	}
	if !mr.Exists(store.Key(owner, collectionExpenses)) {
		t.Error("expected expenses document to exist")
	}
}

func TestExpenseRepository_StampsWithClock(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	at := time.Date(2024, time.March, 3, 9, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	repo := NewExpenseRepository(store, testutil.NewClock(at))
	owner := uuid.New()

	e := entity.NewExpense(owner, decimal.NewFromInt(2), "Coffee", entity.PaymentTypeCash, at, "")
	if err := repo.Append(ctx, e); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if !e.CreatedAt.Equal(at) || e.CreatedAt.Location() != time.UTC {
		t.Errorf("expected CreatedAt %v in UTC, got %v", at.UTC(), e.CreatedAt)
	}

	got, err := repo.FindAll(ctx, owner)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(got) != 1 || !got[0].CreatedAt.Equal(at) {
		t.Errorf("expected stored CreatedAt %v, got %+v", at, got)
	}
}

func TestRepositories_MalformedDocumentsReadAsAbsent(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)
	owner := uuid.New()

	for _, c := range []string{collectionExpenses, collectionCategories, collectionLimit, collectionAchievements, collectionInsightIndex} {
		mr.Set(store.Key(owner, c), "{not json")
	}

	expenses, err := NewExpenseRepository(store, wallClock).FindAll(ctx, owner)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("expected no expenses, got %d", len(expenses))
	}

	categories, err := NewCategoryRepository(store).FindAll(ctx, owner)
	if err != nil || len(categories) != 0 {
		t.Errorf("expected empty categories, got %d (%v)", len(categories), err)
	}

	if _, err := NewSpendingLimitRepository(store).Find(ctx, owner); !errors.Is(err, domainerror.ErrSpendingLimitNotFound) {
		t.Errorf("expected ErrSpendingLimitNotFound, got %v", err)
	}

	if _, err := NewAchievementRepository(store).Find(ctx, owner); !errors.Is(err, domainerror.ErrAchievementStateNotFound) {
		t.Errorf("expected ErrAchievementStateNotFound, got %v", err)
	}

	if _, ok, err := NewInsightCursorRepository(store).GetIndex(ctx, owner); ok || err != nil {
		t.Errorf("expected absent index, got ok=%v err=%v", ok, err)
	}
}

func TestSpendingLimitRepository_IncompleteDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty object", `{}`},
		{"zero amount", `{"amount":"0","period":"month"}`},
		{"negative amount", `{"amount":"-5","period":"week"}`},
		{"unknown period", `{"amount":"100","period":"fortnight"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, mr := newTestStore(t)
			owner := uuid.New()
			mr.Set(store.Key(owner, collectionLimit), tt.doc)

			if _, err := NewSpendingLimitRepository(store).Find(ctx, owner); !errors.Is(err, domainerror.ErrSpendingLimitNotFound) {
				t.Errorf("expected ErrSpendingLimitNotFound, got %v", err)
			}
		})
	}
}

func TestWorkspaceLoader_ReseedsEmptyLimit(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)
	owner := uuid.New()
	mr.Set(store.Key(owner, collectionLimit), `{}`)

	limits := NewSpendingLimitRepository(store)
	loader := workspace.NewLoader(workspace.Repositories{
		Expenses:      NewExpenseRepository(store, wallClock),
		Categories:    NewCategoryRepository(store),
		Cards:         NewCardRepository(store),
		Budgets:       NewBudgetRepository(store),
		Limits:        limits,
		Achievements:  NewAchievementRepository(store),
		InsightCursor: NewInsightCursorRepository(store),
	})
	if _, err := loader.Load(ctx, owner); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	limit, err := limits.Find(ctx, owner)
	if err != nil {
		t.Fatalf("expected a seeded limit, got %v", err)
	}
	want := entity.DefaultSpendingLimit(owner)
	if !limit.Amount.Equal(want.Amount) || limit.Period != want.Period {
		t.Errorf("expected %s per %s, got %s per %s", want.Amount, want.Period, limit.Amount, limit.Period)
	}
}

func TestRepositories_AppendAfterCorruptionStartsFresh(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)
	repo := NewExpenseRepository(store, wallClock)
	owner := uuid.New()
	mr.Set(store.Key(owner, collectionExpenses), "garbage")

	if err := repo.Append(ctx, entity.NewExpense(owner, decimal.NewFromInt(3), "Coffee", entity.PaymentTypeCash, time.Now().UTC(), "")); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	got, err := repo.FindAll(ctx, owner)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 expense after corruption, got %d", len(got))
	}
}

func TestWorkspaceLoader_SeedsLocalStore(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)
	owner := entity.GuestOwnerID
	loader := workspace.NewLoader(workspace.Repositories{
		Expenses:      NewExpenseRepository(store, wallClock),
		Categories:    NewCategoryRepository(store),
		Cards:         NewCardRepository(store),
		Budgets:       NewBudgetRepository(store),
		Limits:        NewSpendingLimitRepository(store),
		Achievements:  NewAchievementRepository(store),
		InsightCursor: NewInsightCursorRepository(store),
	})

	ws, err := loader.Load(ctx, owner)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(ws.Categories) != 6 {
		t.Errorf("expected 6 seeded categories, got %d", len(ws.Categories))
	}
	if !ws.Limit.Amount.Equal(decimal.NewFromInt(1000)) || ws.Limit.Period != entity.BudgetPeriodMonth {
		t.Errorf("expected seeded 1000/month limit, got %s/%s", ws.Limit.Amount, ws.Limit.Period)
	}

	for _, c := range []string{collectionCategories, collectionLimit, collectionAchievements, collectionInsightIndex} {
		if !mr.Exists(store.Key(owner, c)) {
			t.Errorf("expected %s to be seeded", c)
		}
	}

	again, err := loader.Load(ctx, owner)
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if len(again.Categories) != 6 {
		t.Errorf("expected seeding to be idempotent, got %d categories", len(again.Categories))
	}
}

func TestBudgetAndCardRepositories(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	owner := uuid.New()

	budgets := NewBudgetRepository(store)
	budget := entity.NewBudget(owner, "Coffee", decimal.NewFromInt(40), entity.BudgetPeriodWeek)
	if err := budgets.Create(ctx, budget); err != nil {
		t.Fatalf("create budget failed: %v", err)
	}
	exists, err := budgets.ExistsByCategoryAndPeriod(ctx, owner, "Coffee", entity.BudgetPeriodWeek)
	if err != nil || !exists {
		t.Errorf("expected budget to exist, got %v %v", exists, err)
	}
	if err := budgets.Delete(ctx, owner, budget.ID); err != nil {
		t.Fatalf("delete budget failed: %v", err)
	}
	if _, err := budgets.FindByID(ctx, owner, budget.ID); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected ErrBudgetNotFound, got %v", err)
	}

	cards := NewCardRepository(store)
	card := entity.NewCard(owner, "Daily", "9876")
	if err := cards.Create(ctx, card); err != nil {
		t.Fatalf("create card failed: %v", err)
	}
	found, err := cards.FindByID(ctx, owner, card.ID)
	if err != nil {
		t.Fatalf("find card failed: %v", err)
	}
	if found.Nickname != "Daily" {
		t.Errorf("expected nickname Daily, got %s", found.Nickname)
	}
	if err := cards.Delete(ctx, owner, uuid.New()); !errors.Is(err, domainerror.ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}
