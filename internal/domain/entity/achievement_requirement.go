// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// RequirementKind names a requirement variant. It is the wire/storage tag only;
// evaluation switches on the concrete Go type.
type RequirementKind string

const (
	RequirementTransactionCount            RequirementKind = "transaction_count"
	RequirementConsecutiveDays             RequirementKind = "consecutive_days"
	RequirementCategoryCount               RequirementKind = "category_count"
	RequirementSingleTransactionAmount     RequirementKind = "single_transaction_amount"
	RequirementCardCount                   RequirementKind = "card_count"
	RequirementCustomCategoryCount         RequirementKind = "custom_category_count"
	RequirementSpendingLimitSet            RequirementKind = "spending_limit_set"
	RequirementTransactionsWithDescription RequirementKind = "transactions_with_description"
	RequirementAllDefaultCategories        RequirementKind = "all_default_categories"
	RequirementTimeBased                   RequirementKind = "time_based"
	RequirementUnderLimitDays              RequirementKind = "under_limit_days"
	RequirementUnderLimitPercentage        RequirementKind = "under_limit_percentage"
	RequirementRecoveryFromOverLimit       RequirementKind = "recovery_from_over_limit"
	RequirementZeroSpendDay                RequirementKind = "zero_spend_day"
	RequirementAnalyticsViews              RequirementKind = "analytics_views"
)

// Requirement is the closed set of unlock conditions. Only types in this file
// implement it.
type Requirement interface {
	Kind() RequirementKind
	sealed()
}

// TransactionCount unlocks when at least Target expenses exist.
type TransactionCount struct{ Target int }

// ConsecutiveDays unlocks when the current streak reaches Target.
type ConsecutiveDays struct{ Target int }

// CategoryCount unlocks when at least Target expenses use Category.
type CategoryCount struct {
	Category string
	Target   int
}

// SingleTransactionAmount unlocks when any expense amount reaches Target.
type SingleTransactionAmount struct{ Target decimal.Decimal }

// CardCount unlocks when at least Target cards exist.
type CardCount struct{ Target int }

// CustomCategoryCount unlocks when at least Target non-default categories exist.
type CustomCategoryCount struct{ Target int }

// SpendingLimitSet unlocks when a positive global limit is configured.
type SpendingLimitSet struct{}

// TransactionsWithDescription unlocks when at least Target expenses carry a
// non-blank description.
type TransactionsWithDescription struct{ Target int }

// AllDefaultCategories unlocks when at least Target distinct default category
// names appear among the expenses.
type AllDefaultCategories struct{ Target int }

// TimeComparison selects the side of a TimeBased threshold.
type TimeComparison string

const (
	TimeBefore TimeComparison = "before"
	TimeAfter  TimeComparison = "after"
)

// TimeBased unlocks on the hour of day of the most recently appended expense.
type TimeBased struct {
	Comparison TimeComparison
	Hour       int
}

// UnderLimitDays is catalogued but has no evaluator yet.
type UnderLimitDays struct{ Target int }

// UnderLimitPercentage is catalogued but has no evaluator yet.
type UnderLimitPercentage struct{ Target int }

// RecoveryFromOverLimit is catalogued but has no evaluator yet.
type RecoveryFromOverLimit struct{}

// ZeroSpendDay is catalogued but has no evaluator yet.
type ZeroSpendDay struct{ Target int }

// AnalyticsViews is catalogued but has no evaluator yet.
type AnalyticsViews struct{ Target int }

func (TransactionCount) Kind() RequirementKind        { return RequirementTransactionCount }
func (ConsecutiveDays) Kind() RequirementKind         { return RequirementConsecutiveDays }
func (CategoryCount) Kind() RequirementKind           { return RequirementCategoryCount }
func (SingleTransactionAmount) Kind() RequirementKind { return RequirementSingleTransactionAmount }
func (CardCount) Kind() RequirementKind               { return RequirementCardCount }
func (CustomCategoryCount) Kind() RequirementKind     { return RequirementCustomCategoryCount }
func (SpendingLimitSet) Kind() RequirementKind        { return RequirementSpendingLimitSet }
func (TransactionsWithDescription) Kind() RequirementKind {
	return RequirementTransactionsWithDescription
}
func (AllDefaultCategories) Kind() RequirementKind  { return RequirementAllDefaultCategories }
func (TimeBased) Kind() RequirementKind             { return RequirementTimeBased }
func (UnderLimitDays) Kind() RequirementKind        { return RequirementUnderLimitDays }
func (UnderLimitPercentage) Kind() RequirementKind  { return RequirementUnderLimitPercentage }
func (RecoveryFromOverLimit) Kind() RequirementKind { return RequirementRecoveryFromOverLimit }
func (ZeroSpendDay) Kind() RequirementKind          { return RequirementZeroSpendDay }
func (AnalyticsViews) Kind() RequirementKind        { return RequirementAnalyticsViews }

func (TransactionCount) sealed()            {}
func (ConsecutiveDays) sealed()             {}
func (CategoryCount) sealed()               {}
func (SingleTransactionAmount) sealed()     {}
func (CardCount) sealed()                   {}
func (CustomCategoryCount) sealed()         {}
func (SpendingLimitSet) sealed()            {}
func (TransactionsWithDescription) sealed() {}
func (AllDefaultCategories) sealed()        {}
func (TimeBased) sealed()                   {}
func (UnderLimitDays) sealed()              {}
func (UnderLimitPercentage) sealed()        {}
func (RecoveryFromOverLimit) sealed()       {}
func (ZeroSpendDay) sealed()                {}
func (AnalyticsViews) sealed()              {}
