package insight

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/testutil"
)

// Wednesday.
var now = time.Date(2024, time.June, 12, 18, 0, 0, 0, time.UTC)

func expense(amount string, category string, date time.Time) *entity.Expense {
	return entity.NewExpense(uuid.Nil, decimal.RequireFromString(amount), category, entity.PaymentTypeCash, date, "")
}

func TestGenerateEmpty(t *testing.T) {
	for _, card := range Generate(nil, entity.Streak{}, now) {
		if !card.Empty || card.Value != NoDataValue {
			t.Errorf("%s: expected placeholder, got %+v", card.Title, card)
		}
	}
}

func TestMostExpensiveDay(t *testing.T) {
	records := []*entity.Expense{
		expense("10", "Coffee", time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)),
		expense("15", "Coffee", time.Date(2024, time.June, 10, 19, 0, 0, 0, time.UTC)),
		expense("25", "Shopping", time.Date(2024, time.June, 11, 9, 0, 0, 0, time.UTC)),
		expense("900", "Shopping", now.Add(-31*24*time.Hour)),
	}
	got := MostExpensiveDay(records, now)
	if got.Value != "25.00" {
		t.Errorf("expected 25.00, got %s", got.Value)
	}
	if got.Subtitle != "Monday, June 10" {
		t.Errorf("expected first day reaching the max, got %s", got.Subtitle)
	}
}

func TestWeekendVsWeekday(t *testing.T) {
	saturday := time.Date(2024, time.June, 8, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		records          []*entity.Expense
		expectedValue    string
		expectedSubtitle string
	}{
		{"more on weekends", []*entity.Expense{expense("30", "Coffee", saturday), expense("20", "Coffee", monday)}, "50%", "more on weekends"},
		{"more on weekdays", []*entity.Expense{expense("10", "Coffee", saturday), expense("25", "Coffee", monday)}, "150%", "more on weekdays"},
		{"equal", []*entity.Expense{expense("10", "Coffee", saturday), expense("10", "Coffee", monday)}, "0%", "Weekends and weekdays cost the same"},
		{"weekend only", []*entity.Expense{expense("10", "Coffee", saturday)}, "100%", "All spending happened on weekends"},
		{"weekday only", []*entity.Expense{expense("10", "Coffee", monday)}, "100%", "All spending happened on weekdays"},
		{"both zero", []*entity.Expense{expense("0", "Coffee", monday)}, "0%", "Nothing spent on weekends or weekdays"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekendVsWeekday(tt.records, now)
			if got.Value != tt.expectedValue || got.Subtitle != tt.expectedSubtitle {
				t.Errorf("expected %q %q, got %q %q", tt.expectedValue, tt.expectedSubtitle, got.Value, got.Subtitle)
			}
		})
	}
}

func TestTopCategoryThisMonth(t *testing.T) {
	t.Run("calendar month, not rolling", func(t *testing.T) {
		records := []*entity.Expense{
			expense("500", "Shopping", time.Date(2024, time.May, 30, 12, 0, 0, 0, time.UTC)),
			expense("12", "Coffee", time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)),
			expense("8", "Transport", time.Date(2024, time.June, 2, 8, 0, 0, 0, time.UTC)),
		}
		got := TopCategoryThisMonth(records, now)
		if got.Value != "Coffee" {
			t.Errorf("expected Coffee, got %s", got.Value)
		}
		if got.Subtitle != "12.00 spent in June" {
			t.Errorf("unexpected subtitle %q", got.Subtitle)
		}
	})

	t.Run("only older months is a placeholder", func(t *testing.T) {
		got := TopCategoryThisMonth([]*entity.Expense{expense("5", "Coffee", now.AddDate(0, -1, 0))}, now)
		if !got.Empty {
			t.Errorf("expected placeholder, got %+v", got)
		}
	})
}

func TestAverageTransaction(t *testing.T) {
	records := []*entity.Expense{
		expense("10", "Coffee", now.Add(-time.Hour)),
		expense("5", "Coffee", now.Add(-2*time.Hour)),
		expense("1000", "Coffee", now.Add(-Window-time.Second)),
	}
	got := AverageTransaction(records, now)
	if got.Value != "7.50" {
		t.Errorf("expected 7.50, got %s", got.Value)
	}
	if got.Subtitle != "across 2 transactions in the last 30 days" {
		t.Errorf("unexpected subtitle %q", got.Subtitle)
	}
}

func TestStreakInsight(t *testing.T) {
	tests := []struct {
		streak   int
		expected string
	}{
		{1, "Every streak starts with one day"},
		{2, "Every streak starts with one day"},
		{3, "Building a habit"},
		{6, "Building a habit"},
		{7, "A full week and counting"},
		{13, "A full week and counting"},
		{14, "Unstoppable, keep it going"},
		{29, "Unstoppable, keep it going"},
		{30, "Legendary consistency"},
		{365, "Legendary consistency"},
	}
	for _, tt := range tests {
		got := StreakInsight(entity.Streak{CurrentStreak: tt.streak})
		if got.Subtitle != tt.expected {
			t.Errorf("streak %d: expected %q, got %q", tt.streak, tt.expected, got.Subtitle)
		}
	}
}

func TestRotateInsightUseCase(t *testing.T) {
	ctx := context.Background()
	clock := testutil.NewClock(now)
	store := testutil.NewMemStore(clock.Now)
	loader := workspace.NewLoader(store.Repositories())
	owner := uuid.New()

	out, err := NewGetInsightsUseCase(loader, clock).Execute(ctx, GetInsightsInput{OwnerID: owner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Index != 0 || len(out.Insights) != Count {
		t.Fatalf("expected index 0 with %d cards, got %+v", Count, out)
	}

	rotate := NewRotateInsightUseCase(loader, clock)
	for want := 1; want <= Count; want++ {
		out, err = rotate.Execute(ctx, GetInsightsInput{OwnerID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Index != want%Count {
			t.Errorf("expected index %d, got %d", want%Count, out.Index)
		}
	}

	index, _, _ := store.Repositories().InsightCursor.GetIndex(ctx, owner)
	if index != 0 {
		t.Errorf("expected persisted index 0 after a full cycle, got %d", index)
	}
}
