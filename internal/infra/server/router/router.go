// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pocket-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	expenseController     *controller.ExpenseController
	analyticsController   *controller.AnalyticsController
	achievementController *controller.AchievementController
	budgetController      *controller.BudgetController
	categoryController    *controller.CategoryController
	cardController        *controller.CardController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	metricsEnabled        bool
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	expenseController *controller.ExpenseController,
	analyticsController *controller.AnalyticsController,
	achievementController *controller.AchievementController,
	budgetController *controller.BudgetController,
	categoryController *controller.CategoryController,
	cardController *controller.CardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	metricsEnabled bool,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		expenseController:     expenseController,
		analyticsController:   analyticsController,
		achievementController: achievementController,
		budgetController:      budgetController,
		categoryController:    categoryController,
		cardController:        cardController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
		metricsEnabled:        metricsEnabled,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	if r.metricsEnabled {
		r.engine.Use(middleware.Metrics())
		r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	// Auth routes (only setup if auth controller is available)
	if r.authController != nil && r.loginRateLimiter != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
			auth.POST("/logout", r.authController.Logout)
		}
	}

	if r.authMiddleware == nil {
		return
	}

	ledger := v1.Group("")
	ledger.Use(r.authMiddleware.Authenticate())

	if r.expenseController != nil {
		expenses := ledger.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
		}
	}

	if r.analyticsController != nil {
		analytics := ledger.Group("/analytics")
		{
			analytics.GET("", r.analyticsController.Snapshot)
			analytics.GET("/categories", r.analyticsController.Breakdown)
		}

		insights := ledger.Group("/insights")
		{
			insights.GET("", r.analyticsController.Insights)
			insights.POST("/rotate", r.analyticsController.RotateInsight)
		}

		ledger.GET("/theme", r.analyticsController.Theme)
	}

	if r.achievementController != nil {
		achievements := ledger.Group("/achievements")
		{
			achievements.GET("", r.achievementController.List)
			achievements.PATCH("/:id/showcase", r.achievementController.Showcase)
			achievements.POST("/seen", r.achievementController.MarkSeen)
		}
	}

	if r.budgetController != nil {
		budgets := ledger.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Create)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}

		limit := ledger.Group("/spending-limit")
		{
			limit.GET("", r.budgetController.GetLimit)
			limit.PUT("", r.budgetController.SetLimit)
			limit.GET("/status", r.budgetController.LimitStatus)
		}
	}

	if r.categoryController != nil {
		categories := ledger.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.DELETE("/:id", r.categoryController.Delete)
		}
	}

	if r.cardController != nil {
		cards := ledger.Group("/cards")
		{
			cards.GET("", r.cardController.List)
			cards.POST("", r.cardController.Create)
			cards.DELETE("/:id", r.cardController.Delete)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
