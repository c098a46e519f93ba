// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// AchievementDifficulty grades how hard an achievement is.
type AchievementDifficulty string

const (
	DifficultyEasy   AchievementDifficulty = "easy"
	DifficultyMedium AchievementDifficulty = "medium"
	DifficultyHard   AchievementDifficulty = "hard"
)

// AchievementCategory groups achievements for display.
type AchievementCategory string

const (
	AchievementCategoryMilestone   AchievementCategory = "milestone"
	AchievementCategoryConsistency AchievementCategory = "consistency"
	AchievementCategorySpending    AchievementCategory = "spending"
	AchievementCategoryCategory    AchievementCategory = "category"
	AchievementCategorySpecial     AchievementCategory = "special"
)

// AchievementDefinition is a static catalog entry. It is never persisted.
type AchievementDefinition struct {
	ID          string
	Name        string
	Description string
	Difficulty  AchievementDifficulty
	Category    AchievementCategory
	IconKey     string
	Requirement Requirement
}

// achievementCatalog is evaluated in this order; the first newly unlocked
// entry of a pass becomes the notification.
var achievementCatalog = []AchievementDefinition{
	// Milestones
	{ID: "first_expense", Name: "First Step", Description: "Log your first expense",
		Difficulty: DifficultyEasy, Category: AchievementCategoryMilestone, IconKey: "footprints",
		Requirement: TransactionCount{Target: 1}},
	{ID: "getting_started", Name: "Getting Started", Description: "Log 10 expenses",
		Difficulty: DifficultyEasy, Category: AchievementCategoryMilestone, IconKey: "rocket",
		Requirement: TransactionCount{Target: 10}},
	{ID: "dedicated_tracker", Name: "Dedicated Tracker", Description: "Log 50 expenses",
		Difficulty: DifficultyMedium, Category: AchievementCategoryMilestone, IconKey: "notebook",
		Requirement: TransactionCount{Target: 50}},
	{ID: "century_club", Name: "Century Club", Description: "Log 100 expenses",
		Difficulty: DifficultyHard, Category: AchievementCategoryMilestone, IconKey: "trophy",
		Requirement: TransactionCount{Target: 100}},

	// Consistency
	{ID: "habit_forming", Name: "Habit Forming", Description: "Log expenses 3 days in a row",
		Difficulty: DifficultyEasy, Category: AchievementCategoryConsistency, IconKey: "flame",
		Requirement: ConsecutiveDays{Target: 3}},
	{ID: "week_warrior", Name: "Week Warrior", Description: "Log expenses 7 days in a row",
		Difficulty: DifficultyMedium, Category: AchievementCategoryConsistency, IconKey: "calendar-check",
		Requirement: ConsecutiveDays{Target: 7}},
	{ID: "fortnight_focus", Name: "Fortnight Focus", Description: "Log expenses 14 days in a row",
		Difficulty: DifficultyMedium, Category: AchievementCategoryConsistency, IconKey: "target",
		Requirement: ConsecutiveDays{Target: 14}},
	{ID: "monthly_master", Name: "Monthly Master", Description: "Log expenses 30 days in a row",
		Difficulty: DifficultyHard, Category: AchievementCategoryConsistency, IconKey: "crown",
		Requirement: ConsecutiveDays{Target: 30}},

	// Spending
	{ID: "big_spender", Name: "Big Spender", Description: "Log a single expense of 100 or more",
		Difficulty: DifficultyEasy, Category: AchievementCategorySpending, IconKey: "money",
		Requirement: SingleTransactionAmount{Target: decimal.NewFromInt(100)}},
	{ID: "mega_purchase", Name: "Mega Purchase", Description: "Log a single expense of 500 or more",
		Difficulty: DifficultyMedium, Category: AchievementCategorySpending, IconKey: "diamond",
		Requirement: SingleTransactionAmount{Target: decimal.NewFromInt(500)}},
	{ID: "budget_conscious", Name: "Budget Conscious", Description: "Set a spending limit",
		Difficulty: DifficultyEasy, Category: AchievementCategorySpending, IconKey: "piggy-bank",
		Requirement: SpendingLimitSet{}},
	{ID: "under_budget_week", Name: "Steady Hand", Description: "Stay under your limit for 7 days",
		Difficulty: DifficultyMedium, Category: AchievementCategorySpending, IconKey: "shield-check",
		Requirement: UnderLimitDays{Target: 7}},
	{ID: "frugal_month", Name: "Frugal Month", Description: "Finish a month using at most half of your limit",
		Difficulty: DifficultyHard, Category: AchievementCategorySpending, IconKey: "leaf",
		Requirement: UnderLimitPercentage{Target: 50}},
	{ID: "comeback_kid", Name: "Comeback Kid", Description: "Get back under your limit after going over",
		Difficulty: DifficultyMedium, Category: AchievementCategorySpending, IconKey: "arrow-u-up-left",
		Requirement: RecoveryFromOverLimit{}},
	{ID: "zero_day", Name: "Zero Day", Description: "Have a day without spending",
		Difficulty: DifficultyEasy, Category: AchievementCategorySpending, IconKey: "circle-dashed",
		Requirement: ZeroSpendDay{Target: 1}},

	// Categories
	{ID: "coffee_lover", Name: "Coffee Lover", Description: "Log 10 Coffee expenses",
		Difficulty: DifficultyEasy, Category: AchievementCategoryCategory, IconKey: "coffee",
		Requirement: CategoryCount{Category: "Coffee", Target: 10}},
	{ID: "commuter", Name: "Commuter", Description: "Log 10 Transport expenses",
		Difficulty: DifficultyEasy, Category: AchievementCategoryCategory, IconKey: "train",
		Requirement: CategoryCount{Category: "Transport", Target: 10}},
	{ID: "retail_therapy", Name: "Retail Therapy", Description: "Log 10 Shopping expenses",
		Difficulty: DifficultyMedium, Category: AchievementCategoryCategory, IconKey: "tote",
		Requirement: CategoryCount{Category: "Shopping", Target: 10}},
	{ID: "health_nut", Name: "Health Nut", Description: "Log 5 Health expenses",
		Difficulty: DifficultyEasy, Category: AchievementCategoryCategory, IconKey: "first-aid",
		Requirement: CategoryCount{Category: "Health", Target: 5}},
	{ID: "category_explorer", Name: "Category Explorer", Description: "Log an expense in every default category",
		Difficulty: DifficultyMedium, Category: AchievementCategoryCategory, IconKey: "compass",
		Requirement: AllDefaultCategories{Target: 6}},
	{ID: "organizer", Name: "Organizer", Description: "Create a custom category",
		Difficulty: DifficultyEasy, Category: AchievementCategoryCategory, IconKey: "folder-plus",
		Requirement: CustomCategoryCount{Target: 1}},
	{ID: "category_curator", Name: "Category Curator", Description: "Create 5 custom categories",
		Difficulty: DifficultyMedium, Category: AchievementCategoryCategory, IconKey: "folders",
		Requirement: CustomCategoryCount{Target: 5}},

	// Special
	{ID: "card_holder", Name: "Card Holder", Description: "Add a payment card",
		Difficulty: DifficultyEasy, Category: AchievementCategorySpecial, IconKey: "credit-card",
		Requirement: CardCount{Target: 1}},
	{ID: "card_collector", Name: "Card Collector", Description: "Add 3 payment cards",
		Difficulty: DifficultyMedium, Category: AchievementCategorySpecial, IconKey: "cards",
		Requirement: CardCount{Target: 3}},
	{ID: "storyteller", Name: "Storyteller", Description: "Add a description to 10 expenses",
		Difficulty: DifficultyMedium, Category: AchievementCategorySpecial, IconKey: "pencil",
		Requirement: TransactionsWithDescription{Target: 10}},
	{ID: "early_bird", Name: "Early Bird", Description: "Log an expense before 8 AM",
		Difficulty: DifficultyEasy, Category: AchievementCategorySpecial, IconKey: "sun-horizon",
		Requirement: TimeBased{Comparison: TimeBefore, Hour: 8}},
	{ID: "night_owl", Name: "Night Owl", Description: "Log an expense after 10 PM",
		Difficulty: DifficultyEasy, Category: AchievementCategorySpecial, IconKey: "moon",
		Requirement: TimeBased{Comparison: TimeAfter, Hour: 22}},
	{ID: "data_nerd", Name: "Data Nerd", Description: "Open your analytics 10 times",
		Difficulty: DifficultyEasy, Category: AchievementCategorySpecial, IconKey: "chart-bar",
		Requirement: AnalyticsViews{Target: 10}},
}

// AchievementCatalog returns the static catalog in evaluation order.
func AchievementCatalog() []AchievementDefinition {
	out := make([]AchievementDefinition, len(achievementCatalog))
	copy(out, achievementCatalog)
	return out
}

// FindAchievement looks up a catalog entry by ID.
func FindAchievement(id string) (AchievementDefinition, bool) {
	for _, def := range achievementCatalog {
		if def.ID == id {
			return def, true
		}
	}
	return AchievementDefinition{}, false
}
