package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/usecase/category"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// CategoryController serves /categories.
type CategoryController struct {
	list   *category.ListCategoriesUseCase
	create *category.CreateCategoryUseCase
	remove *category.DeleteCategoryUseCase
}

func NewCategoryController(
	list *category.ListCategoriesUseCase,
	create *category.CreateCategoryUseCase,
	remove *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{list: list, create: create, remove: remove}
}

// List handles GET /categories with per-category usage.
func (c *CategoryController) List(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	out, err := c.list.Execute(ctx.Request.Context(), category.ListCategoriesInput{OwnerID: ownerID})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(out.Categories))
}

// Create handles POST /categories.
func (c *CategoryController) Create(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingCategoryFields))
		return
	}

	out, err := c.create.Execute(ctx.Request.Context(), category.CreateCategoryInput{OwnerID: ownerID, Name: req.Name, Icon: req.Icon})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(out.Category))
}

// Delete handles DELETE /categories/:id. Defaults and used names answer 409.
func (c *CategoryController) Delete(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeCategoryNotFound))
	if !ok {
		return
	}

	if _, err := c.remove.Execute(ctx.Request.Context(), category.DeleteCategoryInput{OwnerID: ownerID, CategoryID: id}); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
