// Package observability exposes Prometheus metrics for the ledger.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ExpensesSaved tracks appended expenses by payment type.
var ExpensesSaved = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ledger",
	Name:      "expenses_saved_total",
	Help:      "Total expenses appended to the record store.",
}, []string{"payment_type"})

// AchievementsUnlocked tracks unlocks per achievement.
var AchievementsUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ledger",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
}, []string{"achievement"})

// BudgetAlerts tracks raised budget alerts by status band.
var BudgetAlerts = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ledger",
	Name:      "budget_alerts_total",
	Help:      "Total budget alerts raised after a save.",
}, []string{"status"})

// HTTPRequestDuration tracks request latency by route.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "ledger",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})

// PrometheusRecorder implements adapter.EventRecorder on the package counters.
type PrometheusRecorder struct{}

// NewPrometheusRecorder creates a new PrometheusRecorder instance.
func NewPrometheusRecorder() *PrometheusRecorder {
	return &PrometheusRecorder{}
}

// ExpenseSaved counts an appended expense.
func (r *PrometheusRecorder) ExpenseSaved(paymentType string) {
	ExpensesSaved.WithLabelValues(paymentType).Inc()
}

// AchievementUnlocked counts an unlock.
func (r *PrometheusRecorder) AchievementUnlocked(achievementID string) {
	AchievementsUnlocked.WithLabelValues(achievementID).Inc()
}

// BudgetAlertRaised counts a warning or danger alert.
func (r *PrometheusRecorder) BudgetAlertRaised(status string) {
	BudgetAlerts.WithLabelValues(status).Inc()
}
