package achievement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/testutil"
)

func TestUpdateStreak(t *testing.T) {
	now := time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		streak   entity.Streak
		expected entity.Streak
	}{
		{
			name:     "first log starts at one",
			streak:   entity.Streak{},
			expected: entity.Streak{CurrentStreak: 1, LongestStreak: 1, LastLogDate: "2024-05-10"},
		},
		{
			name:     "same day is a no-op",
			streak:   entity.Streak{CurrentStreak: 4, LongestStreak: 6, LastLogDate: "2024-05-10"},
			expected: entity.Streak{CurrentStreak: 4, LongestStreak: 6, LastLogDate: "2024-05-10"},
		},
		{
			name:     "yesterday extends by one",
			streak:   entity.Streak{CurrentStreak: 4, LongestStreak: 4, LastLogDate: "2024-05-09"},
			expected: entity.Streak{CurrentStreak: 5, LongestStreak: 5, LastLogDate: "2024-05-10"},
		},
		{
			name:     "gap resets to one and keeps longest",
			streak:   entity.Streak{CurrentStreak: 9, LongestStreak: 9, LastLogDate: "2024-05-08"},
			expected: entity.Streak{CurrentStreak: 1, LongestStreak: 9, LastLogDate: "2024-05-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateStreak(tt.streak, now)
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}

	t.Run("month boundary counts as yesterday", func(t *testing.T) {
		first := time.Date(2024, time.March, 1, 0, 5, 0, 0, time.UTC)
		got := UpdateStreak(entity.Streak{CurrentStreak: 2, LongestStreak: 2, LastLogDate: "2024-02-29"}, first)
		if got.CurrentStreak != 3 {
			t.Errorf("expected streak 3, got %d", got.CurrentStreak)
		}
	})
}

func newWorkspace(records ...*entity.Expense) *workspace.Workspace {
	owner := uuid.New()
	return &workspace.Workspace{
		OwnerID:      owner,
		Expenses:     records,
		Categories:   entity.DefaultCategories(owner),
		Limit:        entity.DefaultSpendingLimit(owner),
		Achievements: entity.NewAchievementState(owner),
	}
}

func record(amount string, category string, date time.Time) *entity.Expense {
	return entity.NewExpense(uuid.Nil, decimal.RequireFromString(amount), category, entity.PaymentTypeCash, date, "")
}

func ids(defs []entity.AchievementDefinition) map[string]bool {
	out := map[string]bool{}
	for _, d := range defs {
		out[d.ID] = true
	}
	return out
}

func TestCheck(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

	t.Run("time based uses the last appended record", func(t *testing.T) {
		ws := newWorkspace(
			record("1", "Coffee", time.Date(2024, time.May, 10, 23, 0, 0, 0, time.UTC)),
			record("1", "Coffee", time.Date(2024, time.May, 9, 7, 0, 0, 0, time.UTC)),
		)
		early, _ := Check(entity.TimeBased{Comparison: entity.TimeBefore, Hour: 8}, ws, now)
		late, _ := Check(entity.TimeBased{Comparison: entity.TimeAfter, Hour: 22}, ws, now)
		if !early {
			t.Error("expected early bird to hold for a 07:00 last record")
		}
		if late {
			t.Error("expected night owl not to hold although an earlier record is at 23:00")
		}
	})

	t.Run("description count ignores blank text", func(t *testing.T) {
		a := record("1", "Coffee", now)
		a.Description = "   "
		b := record("1", "Coffee", now)
		b.Description = "latte"
		ws := newWorkspace(a, b)
		ok, _ := Check(entity.TransactionsWithDescription{Target: 2}, ws, now)
		if ok {
			t.Error("expected blank descriptions not to count")
		}
	})

	t.Run("custom categories exclude defaults", func(t *testing.T) {
		ws := newWorkspace()
		ok, _ := Check(entity.CustomCategoryCount{Target: 1}, ws, now)
		if ok {
			t.Error("expected no custom categories")
		}
		ws.Categories = append(ws.Categories, entity.NewCategory(ws.OwnerID, "Books", "book"))
		ok, _ = Check(entity.CustomCategoryCount{Target: 1}, ws, now)
		if !ok {
			t.Error("expected one custom category")
		}
	})

	t.Run("all default categories counts distinct names", func(t *testing.T) {
		var records []*entity.Expense
		for _, name := range entity.DefaultCategoryNames()[:5] {
			records = append(records, record("1", name, now), record("1", name, now))
		}
		records = append(records, record("1", "Books", now))
		ws := newWorkspace(records...)
		ok, _ := Check(entity.AllDefaultCategories{Target: 6}, ws, now)
		if ok {
			t.Error("expected five distinct defaults not to satisfy six")
		}
	})

	t.Run("unsupported kinds report not supported", func(t *testing.T) {
		ws := newWorkspace()
		for _, req := range []entity.Requirement{
			entity.UnderLimitDays{Target: 1},
			entity.UnderLimitPercentage{Target: 1},
			entity.RecoveryFromOverLimit{},
			entity.ZeroSpendDay{Target: 1},
			entity.AnalyticsViews{Target: 0},
		} {
			ok, err := Check(req, ws, now)
			if ok || !errors.Is(err, domainerror.ErrRequirementNotSupported) {
				t.Errorf("%s: expected not supported, got %v, %v", req.Kind(), ok, err)
			}
		}
	})
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

	t.Run("single large purchase", func(t *testing.T) {
		ws := newWorkspace(record("150", "Shopping", now))
		unlocked := ids(Evaluate(ws, now))
		if !unlocked["big_spender"] {
			t.Error("expected big_spender to unlock")
		}
		if unlocked["mega_purchase"] {
			t.Error("expected mega_purchase to stay locked")
		}
	})

	t.Run("first three unlocks are showcased", func(t *testing.T) {
		ws := newWorkspace(record("600", "Shopping", now))
		defs := Evaluate(ws, now)
		if len(defs) < 4 {
			t.Fatalf("expected at least 4 unlocks, got %d", len(defs))
		}
		if ws.Achievements.ShowcasedCount() != entity.MaxShowcasedBadges {
			t.Errorf("expected %d showcased, got %d", entity.MaxShowcasedBadges, ws.Achievements.ShowcasedCount())
		}
		if defs[0].ID != "first_expense" {
			t.Errorf("expected catalog order, first was %s", defs[0].ID)
		}
	})

	t.Run("unlocks are permanent", func(t *testing.T) {
		ws := newWorkspace(record("5", "Coffee", now))
		ws.Achievements.Streak.CurrentStreak = 3
		Evaluate(ws, now)
		if !ws.Achievements.IsUnlocked("habit_forming") {
			t.Fatal("expected habit_forming to unlock")
		}

		ws.Achievements.Streak.CurrentStreak = 1
		again := Evaluate(ws, now.Add(48*time.Hour))
		if len(again) != 0 {
			t.Errorf("expected nothing new, got %d", len(again))
		}
		if !ws.Achievements.IsUnlocked("habit_forming") {
			t.Error("expected habit_forming to remain unlocked after streak reset")
		}
	})

	t.Run("unsupported entries never unlock", func(t *testing.T) {
		ws := newWorkspace(record("5", "Coffee", now))
		ws.Achievements.Stats[entity.StatAnalyticsViews] = 100
		Evaluate(ws, now)
		if ws.Achievements.IsUnlocked("data_nerd") {
			t.Error("expected data_nerd to stay locked")
		}
	})
}

type fixture struct {
	clock  *testutil.Clock
	store  *testutil.MemStore
	loader *workspace.Loader
	owner  uuid.UUID
}

func newFixture(now time.Time) *fixture {
	clock := testutil.NewClock(now)
	store := testutil.NewMemStore(clock.Now)
	return &fixture{
		clock:  clock,
		store:  store,
		loader: workspace.NewLoader(store.Repositories()),
		owner:  uuid.New(),
	}
}

func (f *fixture) save(t *testing.T, amount string) *RecordProgressOutput {
	t.Helper()
	ctx := context.Background()
	rec := record(amount, "Coffee", f.clock.Now())
	rec.OwnerID = f.owner
	if err := f.store.Repositories().Expenses.Append(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ws, err := f.loader.Load(ctx, f.owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc := NewRecordProgressUseCase(f.store.Repositories().Achievements, f.clock, adapter.NopEventRecorder{})
	out, err := uc.Execute(ctx, RecordProgressInput{Workspace: ws})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

func TestRecordProgressUseCase(t *testing.T) {
	t.Run("three consecutive days", func(t *testing.T) {
		f := newFixture(time.Date(2024, time.May, 8, 10, 0, 0, 0, time.UTC))
		first := f.save(t, "5")
		if first.Notification == nil || first.Notification.ID != "first_expense" {
			t.Errorf("expected first_expense notification, got %+v", first.Notification)
		}

		f.clock.Advance(24 * time.Hour)
		f.save(t, "5")
		f.clock.Advance(24 * time.Hour)
		out := f.save(t, "5")

		if out.Streak.CurrentStreak != 3 {
			t.Errorf("expected streak 3, got %d", out.Streak.CurrentStreak)
		}
		unlocked := ids(out.NewlyUnlocked)
		if !unlocked["habit_forming"] {
			t.Error("expected habit_forming to unlock on day three")
		}

		state, _ := f.store.Repositories().Achievements.Find(context.Background(), f.owner)
		if state.IsUnlocked("week_warrior") {
			t.Error("expected week_warrior to stay locked")
		}
		if !state.HasUnseen {
			t.Error("expected unseen flag to be set")
		}
		if state.Stats[entity.StatExpensesLogged] != 3 {
			t.Errorf("expected 3 logged expenses, got %d", state.Stats[entity.StatExpensesLogged])
		}
	})

	t.Run("same day saves keep the streak", func(t *testing.T) {
		f := newFixture(time.Date(2024, time.May, 8, 10, 0, 0, 0, time.UTC))
		f.save(t, "5")
		f.clock.Advance(time.Hour)
		out := f.save(t, "5")
		if out.Streak.CurrentStreak != 1 {
			t.Errorf("expected streak 1, got %d", out.Streak.CurrentStreak)
		}
		if out.Notification != nil {
			t.Errorf("expected no notification, got %s", out.Notification.ID)
		}
	})
}

func TestToggleShowcaseUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(time.Date(2024, time.May, 8, 10, 0, 0, 0, time.UTC))
	// first_expense, big_spender, mega_purchase and budget_conscious
	f.save(t, "600")

	uc := NewToggleShowcaseUseCase(f.loader, f.clock)

	t.Run("cannot exceed the cap", func(t *testing.T) {
		_, err := uc.Execute(ctx, ToggleShowcaseInput{OwnerID: f.owner, AchievementID: "budget_conscious", Showcased: true})
		var achErr *domainerror.AchievementError
		if !errors.As(err, &achErr) || achErr.Code != domainerror.ErrCodeShowcaseFull {
			t.Fatalf("expected showcase full error, got %v", err)
		}
	})

	t.Run("unset then set", func(t *testing.T) {
		out, err := uc.Execute(ctx, ToggleShowcaseInput{OwnerID: f.owner, AchievementID: "first_expense", Showcased: false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ShowcasedCount != 2 {
			t.Errorf("expected 2 showcased, got %d", out.ShowcasedCount)
		}
		out, err = uc.Execute(ctx, ToggleShowcaseInput{OwnerID: f.owner, AchievementID: "budget_conscious", Showcased: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Badge.Showcased || out.ShowcasedCount != 3 {
			t.Errorf("expected budget_conscious showcased with 3 total, got %+v", out)
		}
	})

	t.Run("locked badge", func(t *testing.T) {
		_, err := uc.Execute(ctx, ToggleShowcaseInput{OwnerID: f.owner, AchievementID: "century_club", Showcased: true})
		if !errors.Is(err, domainerror.ErrAchievementLocked) {
			t.Errorf("expected locked error, got %v", err)
		}
	})

	t.Run("unknown badge", func(t *testing.T) {
		_, err := uc.Execute(ctx, ToggleShowcaseInput{OwnerID: f.owner, AchievementID: "nope", Showcased: true})
		if !errors.Is(err, domainerror.ErrAchievementNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestListAndMarkSeen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(time.Date(2024, time.May, 8, 10, 0, 0, 0, time.UTC))
	f.save(t, "5")

	list, err := NewListAchievementsUseCase(f.loader).Execute(ctx, ListAchievementsInput{OwnerID: f.owner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Achievements) != len(entity.AchievementCatalog()) {
		t.Errorf("expected full catalog, got %d", len(list.Achievements))
	}
	if !list.HasUnseen || list.UnlockedCount == 0 {
		t.Errorf("expected unseen unlocks, got %+v", list)
	}
	if !list.Achievements[0].Unlocked || list.Achievements[0].UnlockedAt == nil {
		t.Error("expected first_expense to be unlocked")
	}

	if err := NewMarkSeenUseCase(f.loader, f.clock).Execute(ctx, MarkSeenInput{OwnerID: f.owner}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, _ := f.store.Repositories().Achievements.Find(ctx, f.owner)
	if state.HasUnseen {
		t.Error("expected unseen flag to be cleared")
	}
}
