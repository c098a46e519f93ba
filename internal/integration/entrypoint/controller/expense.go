// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/usecase/expense"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase *expense.ListExpensesUseCase
	saveUseCase *expense.SaveExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	saveUseCase *expense.SaveExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase: listUseCase,
		saveUseCase: saveUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{OwnerID: ownerID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingExpenseFields))
		return
	}

	input := expense.SaveExpenseInput{
		OwnerID:     ownerID,
		Amount:      *req.Amount,
		Category:    req.Category,
		PaymentType: entity.PaymentType(req.PaymentType),
		Description: req.Description,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}
	if req.CardID != nil {
		cardID, err := uuid.Parse(*req.CardID)
		if err != nil {
			badRequest(ctx, err, string(domainerror.ErrCodeCardRequired))
			return
		}
		input.CardID = &cardID
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaveExpenseResponse(output))
}
