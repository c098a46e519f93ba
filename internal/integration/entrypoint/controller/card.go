// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/usecase/card"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// CardController handles payment card endpoints.
type CardController struct {
	listUseCase   *card.ListCardsUseCase
	createUseCase *card.CreateCardUseCase
	deleteUseCase *card.DeleteCardUseCase
}

// NewCardController creates a new card controller instance.
func NewCardController(
	listUseCase *card.ListCardsUseCase,
	createUseCase *card.CreateCardUseCase,
	deleteUseCase *card.DeleteCardUseCase,
) *CardController {
	return &CardController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /cards requests.
func (c *CardController) List(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	cards, err := c.listUseCase.Execute(ctx.Request.Context(), ownerID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardListResponse(cards))
}

// Create handles POST /cards requests.
func (c *CardController) Create(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeCardNicknameMissing))
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), card.CreateCardInput{
		OwnerID:  ownerID,
		Nickname: req.Nickname,
		LastFour: req.LastFour,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCardResponse(created))
}

// Delete handles DELETE /cards/:id requests.
func (c *CardController) Delete(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	cardID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeCardNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), card.DeleteCardInput{
		OwnerID: ownerID,
		CardID:  cardID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
