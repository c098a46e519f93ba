// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/usecase/achievement"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// AchievementController handles achievement endpoints.
type AchievementController struct {
	listUseCase     *achievement.ListAchievementsUseCase
	showcaseUseCase *achievement.ToggleShowcaseUseCase
	markSeenUseCase *achievement.MarkSeenUseCase
}

// NewAchievementController creates a new achievement controller instance.
func NewAchievementController(
	listUseCase *achievement.ListAchievementsUseCase,
	showcaseUseCase *achievement.ToggleShowcaseUseCase,
	markSeenUseCase *achievement.MarkSeenUseCase,
) *AchievementController {
	return &AchievementController{
		listUseCase:     listUseCase,
		showcaseUseCase: showcaseUseCase,
		markSeenUseCase: markSeenUseCase,
	}
}

// List handles GET /achievements requests.
func (c *AchievementController) List(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), achievement.ListAchievementsInput{OwnerID: ownerID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAchievementBoardResponse(output))
}

// Showcase handles PATCH /achievements/:id/showcase requests.
func (c *AchievementController) Showcase(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.ShowcaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeAchievementNotFound))
		return
	}

	output, err := c.showcaseUseCase.Execute(ctx.Request.Context(), achievement.ToggleShowcaseInput{
		OwnerID:       ownerID,
		AchievementID: ctx.Param("id"),
		Showcased:     *req.Showcased,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShowcaseResponse(output))
}

// MarkSeen handles POST /achievements/seen requests.
func (c *AchievementController) MarkSeen(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	if err := c.markSeenUseCase.Execute(ctx.Request.Context(), achievement.MarkSeenInput{OwnerID: ownerID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
