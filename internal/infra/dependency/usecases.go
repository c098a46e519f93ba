package dependency

import (
	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/achievement"
	"github.com/pocket-ledger/backend/internal/application/usecase/analytics"
	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	"github.com/pocket-ledger/backend/internal/application/usecase/card"
	"github.com/pocket-ledger/backend/internal/application/usecase/category"
	"github.com/pocket-ledger/backend/internal/application/usecase/expense"
	"github.com/pocket-ledger/backend/internal/application/usecase/insight"
	"github.com/pocket-ledger/backend/internal/application/usecase/theme"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
)

// UseCases bundles every ledger use case. The HTTP server and the CLI both
// drive the same set.
type UseCases struct {
	Loader *workspace.Loader

	ListExpenses *expense.ListExpensesUseCase
	SaveExpense  *expense.SaveExpenseUseCase

	Snapshot  *analytics.GetSnapshotUseCase
	Breakdown *analytics.GetCategoryBreakdownUseCase

	ListAchievements *achievement.ListAchievementsUseCase
	ToggleShowcase   *achievement.ToggleShowcaseUseCase
	MarkSeen         *achievement.MarkSeenUseCase

	ListBudgets    *budget.ListBudgetsUseCase
	CreateBudget   *budget.CreateBudgetUseCase
	DeleteBudget   *budget.DeleteBudgetUseCase
	SetLimit       *budget.SetSpendingLimitUseCase
	SpendingStatus *budget.GetSpendingStatusUseCase

	ListCategories *category.ListCategoriesUseCase
	CreateCategory *category.CreateCategoryUseCase
	DeleteCategory *category.DeleteCategoryUseCase

	ListCards  *card.ListCardsUseCase
	CreateCard *card.CreateCardUseCase
	DeleteCard *card.DeleteCardUseCase

	Insights      *insight.GetInsightsUseCase
	RotateInsight *insight.RotateInsightUseCase
	Theme         *theme.GetThemeUseCase
}

// NewUseCases wires every use case over repos.
func NewUseCases(repos workspace.Repositories, clock adapter.Clock, events adapter.EventRecorder) *UseCases {
	loader := workspace.NewLoader(repos)
	progress := achievement.NewRecordProgressUseCase(repos.Achievements, clock, events)

	return &UseCases{
		Loader: loader,

		ListExpenses: expense.NewListExpensesUseCase(repos.Expenses),
		SaveExpense:  expense.NewSaveExpenseUseCase(loader, progress, clock, events),

		Snapshot:  analytics.NewGetSnapshotUseCase(loader, clock),
		Breakdown: analytics.NewGetCategoryBreakdownUseCase(repos.Expenses, clock),

		ListAchievements: achievement.NewListAchievementsUseCase(loader),
		ToggleShowcase:   achievement.NewToggleShowcaseUseCase(loader, clock),
		MarkSeen:         achievement.NewMarkSeenUseCase(loader, clock),

		ListBudgets:    budget.NewListBudgetsUseCase(repos.Budgets, repos.Expenses, clock),
		CreateBudget:   budget.NewCreateBudgetUseCase(loader, clock),
		DeleteBudget:   budget.NewDeleteBudgetUseCase(repos.Budgets),
		SetLimit:       budget.NewSetSpendingLimitUseCase(repos.Limits, clock),
		SpendingStatus: budget.NewGetSpendingStatusUseCase(loader, clock),

		ListCategories: category.NewListCategoriesUseCase(loader),
		CreateCategory: category.NewCreateCategoryUseCase(loader),
		DeleteCategory: category.NewDeleteCategoryUseCase(loader),

		ListCards:  card.NewListCardsUseCase(repos.Cards),
		CreateCard: card.NewCreateCardUseCase(repos.Cards),
		DeleteCard: card.NewDeleteCardUseCase(repos.Cards),

		Insights:      insight.NewGetInsightsUseCase(loader, clock),
		RotateInsight: insight.NewRotateInsightUseCase(loader, clock),
		Theme:         theme.NewGetThemeUseCase(loader, clock),
	}
}
