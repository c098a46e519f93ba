package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/testutil"
)

func expense(amount int64, category string, date time.Time) *entity.Expense {
	return entity.NewExpense(uuid.Nil, decimal.NewFromInt(amount), category, entity.PaymentTypeCash, date, "")
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2024, time.March, 31, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   Period
		expected time.Time
	}{
		{"today is local midnight", PeriodToday, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)},
		{"week rolls back seven days", PeriodWeek, time.Date(2024, time.March, 24, 15, 30, 0, 0, time.UTC)},
		{"month rolls back with overflow normalization", PeriodMonth, time.Date(2024, time.March, 2, 15, 30, 0, 0, time.UTC)},
		{"year rolls back one year", PeriodYear, time.Date(2023, time.March, 31, 15, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindowStart(tt.period, now)
			if !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFilterByPeriod(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	records := []*entity.Expense{
		expense(10, "Coffee", now.Add(-time.Hour)),
		expense(20, "Transport", now.AddDate(0, 0, -7)),
		expense(30, "Shopping", now.AddDate(0, 0, -8)),
		expense(40, "Health", now.AddDate(0, -2, 0)),
		expense(50, "Coffee", now.Add(24*time.Hour)),
	}

	tests := []struct {
		name          string
		period        Period
		expectedCount int
		expectedTotal int64
	}{
		{"today includes future-dated records", PeriodToday, 2, 60},
		{"week lower bound is inclusive", PeriodWeek, 3, 80},
		{"month", PeriodMonth, 4, 110},
		{"year", PeriodYear, 5, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByPeriod(records, tt.period, now)
			if len(got.Records) != tt.expectedCount {
				t.Errorf("expected %d records, got %d", tt.expectedCount, len(got.Records))
			}
			if !got.Total.Equal(decimal.NewFromInt(tt.expectedTotal)) {
				t.Errorf("expected total %d, got %s", tt.expectedTotal, got.Total)
			}
		})
	}
}

func TestCategoryTotals(t *testing.T) {
	now := time.Now()

	t.Run("empty input yields empty breakdown", func(t *testing.T) {
		got := CategoryTotals(nil)
		if len(got) != 0 {
			t.Errorf("expected empty breakdown, got %d rows", len(got))
		}
	})

	t.Run("sorted descending with stable ties and zero groups dropped", func(t *testing.T) {
		records := []*entity.Expense{
			expense(10, "Coffee", now),
			expense(0, "Health", now),
			expense(30, "Shopping", now),
			expense(20, "Transport", now),
			expense(10, "Coffee", now),
			expense(0, "Utilities", now),
		}
		got := CategoryTotals(records)

		expected := []string{"Shopping", "Coffee", "Transport"}
		if len(got) != len(expected) {
			t.Fatalf("expected %d rows, got %d", len(expected), len(got))
		}
		for i, name := range expected {
			if got[i].Category != name {
				t.Errorf("row %d: expected %s, got %s", i, name, got[i].Category)
			}
		}
		if got[0].Percentage < 42.857 || got[0].Percentage > 42.858 {
			t.Errorf("unexpected percentage %v", got[0].Percentage)
		}
	})

	t.Run("ties keep first-encountered order", func(t *testing.T) {
		records := []*entity.Expense{
			expense(5, "Transport", now),
			expense(5, "Coffee", now),
		}
		got := CategoryTotals(records)
		if got[0].Category != "Transport" || got[1].Category != "Coffee" {
			t.Errorf("expected Transport then Coffee, got %s then %s", got[0].Category, got[1].Category)
		}
		if got[0].Percentage != 50 {
			t.Errorf("expected 50%%, got %v", got[0].Percentage)
		}
	})

	t.Run("amounts are conserved", func(t *testing.T) {
		records := []*entity.Expense{
			entity.NewExpense(uuid.Nil, decimal.RequireFromString("0.10"), "Coffee", entity.PaymentTypeCash, now, ""),
			entity.NewExpense(uuid.Nil, decimal.RequireFromString("0.20"), "Transport", entity.PaymentTypeCash, now, ""),
			entity.NewExpense(uuid.Nil, decimal.RequireFromString("3.33"), "Coffee", entity.PaymentTypeCash, now, ""),
		}
		sum := decimal.Zero
		for _, row := range CategoryTotals(records) {
			sum = sum.Add(row.Amount)
		}
		if !sum.Equal(decimal.RequireFromString("3.63")) {
			t.Errorf("expected 3.63, got %s", sum)
		}
	})
}

func TestGetSnapshotUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	clock := testutil.NewClock(now)
	store := testutil.NewMemStore(clock.Now)
	loader := workspace.NewLoader(store.Repositories())
	owner := uuid.New()

	rec := expense(5, "Coffee", now)
	rec.OwnerID = owner
	store.AddExpense(rec)

	uc := NewGetSnapshotUseCase(loader, clock)

	t.Run("returns period total and counts the view", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetSnapshotInput{OwnerID: owner, Period: PeriodToday})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Total.Equal(decimal.NewFromInt(5)) {
			t.Errorf("expected total 5, got %s", out.Total)
		}
		if len(out.Records) != 1 {
			t.Errorf("expected 1 record, got %d", len(out.Records))
		}

		state, err := store.Repositories().Achievements.Find(ctx, owner)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Stats[entity.StatAnalyticsViews] != 1 {
			t.Errorf("expected 1 analytics view, got %d", state.Stats[entity.StatAnalyticsViews])
		}
	})

	t.Run("rejects unknown period", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetSnapshotInput{OwnerID: owner, Period: "decade"})
		var analyticsErr *domainerror.AnalyticsError
		if !errors.As(err, &analyticsErr) {
			t.Fatalf("expected AnalyticsError, got %v", err)
		}
		if analyticsErr.Code != domainerror.ErrCodeInvalidPeriod {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidPeriod, analyticsErr.Code)
		}
	})
}

func TestGetCategoryBreakdownUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	clock := testutil.NewClock(now)
	store := testutil.NewMemStore(clock.Now)
	owner := uuid.New()

	for _, r := range []*entity.Expense{
		expense(30, "Shopping", now.AddDate(0, 0, -2)),
		expense(10, "Coffee", now.AddDate(0, 0, -1)),
		expense(99, "Shopping", now.AddDate(0, -3, 0)),
	} {
		r.OwnerID = owner
		store.AddExpense(r)
	}

	uc := NewGetCategoryBreakdownUseCase(store.Repositories().Expenses, clock)
	out, err := uc.Execute(ctx, GetCategoryBreakdownInput{OwnerID: owner, Period: PeriodMonth})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Total.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected total 40, got %s", out.Total)
	}
	if len(out.Categories) != 2 || out.Categories[0].Category != "Shopping" {
		t.Errorf("unexpected breakdown %+v", out.Categories)
	}
	if out.Categories[0].Percentage != 75 {
		t.Errorf("expected 75%%, got %v", out.Categories[0].Percentage)
	}
}
