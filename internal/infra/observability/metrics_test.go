package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorder(t *testing.T) {
	r := NewPrometheusRecorder()

	before := testutil.ToFloat64(AchievementsUnlocked.WithLabelValues("first_expense"))
	r.AchievementUnlocked("first_expense")
	after := testutil.ToFloat64(AchievementsUnlocked.WithLabelValues("first_expense"))
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, grew by %v", after-before)
	}

	before = testutil.ToFloat64(BudgetAlerts.WithLabelValues("danger"))
	r.BudgetAlertRaised("danger")
	after = testutil.ToFloat64(BudgetAlerts.WithLabelValues("danger"))
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, grew by %v", after-before)
	}

	before = testutil.ToFloat64(ExpensesSaved.WithLabelValues("cash"))
	r.ExpenseSaved("cash")
	after = testutil.ToFloat64(ExpensesSaved.WithLabelValues("cash"))
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, grew by %v", after-before)
	}
}
