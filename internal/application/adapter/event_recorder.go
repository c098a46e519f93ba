// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// EventRecorder receives domain events worth counting.
type EventRecorder interface {
	ExpenseSaved(paymentType string)
	AchievementUnlocked(achievementID string)
	BudgetAlertRaised(status string)
}

// NopEventRecorder discards every event.
type NopEventRecorder struct{}

func (NopEventRecorder) ExpenseSaved(string)        {}
func (NopEventRecorder) AchievementUnlocked(string) {}
func (NopEventRecorder) BudgetAlertRaised(string)   {}
