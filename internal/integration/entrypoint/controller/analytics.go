// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/usecase/analytics"
	"github.com/pocket-ledger/backend/internal/application/usecase/insight"
	"github.com/pocket-ledger/backend/internal/application/usecase/theme"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles analytics, insights and theme endpoints.
type AnalyticsController struct {
	snapshotUseCase  *analytics.GetSnapshotUseCase
	breakdownUseCase *analytics.GetCategoryBreakdownUseCase
	insightsUseCase  *insight.GetInsightsUseCase
	rotateUseCase    *insight.RotateInsightUseCase
	themeUseCase     *theme.GetThemeUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	snapshotUseCase *analytics.GetSnapshotUseCase,
	breakdownUseCase *analytics.GetCategoryBreakdownUseCase,
	insightsUseCase *insight.GetInsightsUseCase,
	rotateUseCase *insight.RotateInsightUseCase,
	themeUseCase *theme.GetThemeUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		snapshotUseCase:  snapshotUseCase,
		breakdownUseCase: breakdownUseCase,
		insightsUseCase:  insightsUseCase,
		rotateUseCase:    rotateUseCase,
		themeUseCase:     themeUseCase,
	}
}

// Snapshot handles GET /analytics requests.
func (c *AnalyticsController) Snapshot(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	period, err := analytics.ParsePeriod(ctx.Query("period"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.snapshotUseCase.Execute(ctx.Request.Context(), analytics.GetSnapshotInput{
		OwnerID: ownerID,
		Period:  period,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output))
}

// Breakdown handles GET /analytics/categories requests.
func (c *AnalyticsController) Breakdown(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	period, err := analytics.ParsePeriod(ctx.Query("period"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), analytics.GetCategoryBreakdownInput{
		OwnerID: ownerID,
		Period:  period,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// Insights handles GET /insights requests.
func (c *AnalyticsController) Insights(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), insight.GetInsightsInput{OwnerID: ownerID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightPanelResponse(output))
}

// RotateInsight handles POST /insights/rotate requests.
func (c *AnalyticsController) RotateInsight(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.rotateUseCase.Execute(ctx.Request.Context(), insight.GetInsightsInput{OwnerID: ownerID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightPanelResponse(output))
}

// Theme handles GET /theme requests.
func (c *AnalyticsController) Theme(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.themeUseCase.Execute(ctx.Request.Context(), theme.GetThemeInput{OwnerID: ownerID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToThemeResponse(output))
}
