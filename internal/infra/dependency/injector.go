// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/auth"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/infra/cache"
	"github.com/pocket-ledger/backend/internal/infra/observability"
	"github.com/pocket-ledger/backend/internal/infra/server/router"
	"github.com/pocket-ledger/backend/internal/integration/adapters"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/pocket-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	Store    *Store
	UseCases *UseCases
	Router   *router.Router
}

// NewInjector wires the use cases, controllers and router over store. clock
// is the one the store was opened with.
func NewInjector(ctx context.Context, cfg *config.Config, store *Store, clock adapter.Clock) *Injector {
	var events adapter.EventRecorder = adapter.NopEventRecorder{}
	if cfg.Metrics.Enabled {
		events = observability.NewPrometheusRecorder()
	}

	uc := NewUseCases(store.Repositories, clock, events)

	healthController := controller.NewHealthController(store.Driver, store.HealthCheck)
	expenseController := controller.NewExpenseController(uc.ListExpenses, uc.SaveExpense)
	analyticsController := controller.NewAnalyticsController(uc.Snapshot, uc.Breakdown, uc.Insights, uc.RotateInsight, uc.Theme)
	achievementController := controller.NewAchievementController(uc.ListAchievements, uc.ToggleShowcase, uc.MarkSeen)
	budgetController := controller.NewBudgetController(uc.ListBudgets, uc.CreateBudget, uc.DeleteBudget, uc.SetLimit, uc.SpendingStatus)
	categoryController := controller.NewCategoryController(uc.ListCategories, uc.CreateCategory, uc.DeleteCategory)
	cardController := controller.NewCardController(uc.ListCards, uc.CreateCard, uc.DeleteCard)

	// Accounts need the relational store; the key-value store serves the
	// guest ledger only.
	var (
		authController   *controller.AuthController
		loginRateLimiter *middleware.RateLimiter
		tokens           adapter.TokenIssuer
	)
	if store.SupportsAccounts() {
		gdb := store.Database.DB()
		accounts := persistence.NewAccountRepository(gdb)
		tokens = adapters.NewJWTIssuer(cfg.JWT, persistence.NewSessionRepository(gdb))
		hasher := adapters.NewBcryptHasher()

		authController = controller.NewAuthController(
			auth.NewRegisterUseCase(accounts, hasher, tokens, uc.Loader),
			auth.NewLoginUseCase(accounts, hasher, tokens, clock),
			auth.NewRefreshUseCase(tokens),
			auth.NewLogoutUseCase(tokens),
		)
		loginRateLimiter = newLoginRateLimiter(ctx, cfg, store)
	} else {
		slog.Warn("Store has no account tables, serving the guest ledger only", "driver", store.Driver)
		tokens = adapters.NewJWTIssuer(cfg.JWT, nil)
	}

	authMiddleware := middleware.NewAuthMiddleware(tokens)
	if cfg.Ledger.GuestMode || !store.SupportsAccounts() {
		authMiddleware.WithGuestOwner(entity.GuestOwnerID)
	}

	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		analyticsController,
		achievementController,
		budgetController,
		categoryController,
		cardController,
		loginRateLimiter,
		authMiddleware,
		cfg.Metrics.Enabled,
	)

	return &Injector{
		Config:   cfg,
		Store:    store,
		UseCases: uc,
		Router:   r,
	}
}

// newLoginRateLimiter counts login attempts in memory, or in Redis when the
// limit is shared between instances. Test environments get a loose limit.
func newLoginRateLimiter(ctx context.Context, cfg *config.Config, store *Store) *middleware.RateLimiter {
	var limiter *middleware.RateLimiter
	switch cfg.Server.Environment {
	case "e2e", "test":
		limiter = middleware.NewRateLimiter(1000, time.Minute)
	default:
		limiter = middleware.NewRateLimiter(middleware.DefaultLoginAttempts, middleware.DefaultLoginWindow)
	}

	if !cfg.Redis.SharedRateLimit {
		return limiter
	}
	client, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		slog.Warn("Shared rate limiting unavailable, counting in memory", "error", err)
		return limiter
	}
	store.extra = append(store.extra, client.Close)
	return limiter.WithRedis(client)
}
