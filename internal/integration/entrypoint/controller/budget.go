// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget and spending limit endpoints.
type BudgetController struct {
	listUseCase      *budget.ListBudgetsUseCase
	createUseCase    *budget.CreateBudgetUseCase
	deleteUseCase    *budget.DeleteBudgetUseCase
	setLimitUseCase  *budget.SetSpendingLimitUseCase
	limitStatUseCase *budget.GetSpendingStatusUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	setLimitUseCase *budget.SetSpendingLimitUseCase,
	limitStatUseCase *budget.GetSpendingStatusUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		deleteUseCase:    deleteUseCase,
		setLimitUseCase:  setLimitUseCase,
		limitStatUseCase: limitStatUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{OwnerID: ownerID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingBudgetFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		OwnerID:      ownerID,
		CategoryName: req.CategoryName,
		Amount:       *req.Amount,
		Period:       entity.BudgetPeriod(req.Period),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget, output.Status))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	budgetID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeBudgetNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		OwnerID:  ownerID,
		BudgetID: budgetID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetLimit handles GET /spending-limit requests.
func (c *BudgetController) GetLimit(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	status, err := c.limitStatUseCase.Execute(ctx.Request.Context(), budget.GetSpendingStatusInput{OwnerID: ownerID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SpendingLimitResponse{
		Amount: status.Limit.InexactFloat64(),
		Period: string(status.Period),
	})
}

// SetLimit handles PUT /spending-limit requests.
func (c *BudgetController) SetLimit(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.SpendingLimitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingBudgetFields))
		return
	}

	limit, err := c.setLimitUseCase.Execute(ctx.Request.Context(), budget.SetSpendingLimitInput{
		OwnerID: ownerID,
		Amount:  *req.Amount,
		Period:  entity.BudgetPeriod(req.Period),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpendingLimitResponse(limit))
}

// LimitStatus handles GET /spending-limit/status requests.
func (c *BudgetController) LimitStatus(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	status, err := c.limitStatUseCase.Execute(ctx.Request.Context(), budget.GetSpendingStatusInput{OwnerID: ownerID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpendingStatusResponse(status))
}
