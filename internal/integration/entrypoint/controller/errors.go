// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/middleware"
)

// requireOwner reads the authenticated owner, answering 401 when absent.
func requireOwner(ctx *gin.Context) (uuid.UUID, bool) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return ownerID, true
}

// parseIDParam reads a uuid path parameter, answering 400 when malformed.
func parseIDParam(ctx *gin.Context, name, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
			Code:  code,
		})
		return uuid.Nil, false
	}
	return id, true
}

// badRequest answers a body that failed binding.
func badRequest(ctx *gin.Context, err error, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    code,
		Details: err.Error(),
	})
}

// statusByCode lists every code that is not a plain 400.
var statusByCode = map[string]int{
	string(domainerror.ErrCodeEmailExists):           http.StatusConflict,
	string(domainerror.ErrCodeInvalidCredentials):    http.StatusUnauthorized,
	string(domainerror.ErrCodeInvalidToken):          http.StatusUnauthorized,
	string(domainerror.ErrCodeSessionRevoked):        http.StatusUnauthorized,
	string(domainerror.ErrCodeMissingToken):          http.StatusUnauthorized,
	string(domainerror.ErrCodeRateLimited):           http.StatusTooManyRequests,
	string(domainerror.ErrCodeCategoryNotFound):      http.StatusNotFound,
	string(domainerror.ErrCodeCategoryNameExists):    http.StatusConflict,
	string(domainerror.ErrCodeDefaultCategoryLocked): http.StatusConflict,
	string(domainerror.ErrCodeCategoryInUse):         http.StatusConflict,
	string(domainerror.ErrCodeCardNotFound):          http.StatusNotFound,
	string(domainerror.ErrCodeBudgetNotFound):        http.StatusNotFound,
	string(domainerror.ErrCodeBudgetAlreadyExists):   http.StatusConflict,
	string(domainerror.ErrCodeAchievementNotFound):   http.StatusNotFound,
	string(domainerror.ErrCodeShowcaseFull):          http.StatusConflict,
}

// statusFor returns the HTTP status of a domain error code.
func statusFor(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusBadRequest
}

// handleError answers typed domain errors with their code. Anything else is
// logged and answered with 500.
func handleError(ctx *gin.Context, err error) {
	var coded domainerror.Coded
	if errors.As(err, &coded) {
		ctx.JSON(statusFor(coded.ErrorCode()), dto.ErrorResponse{Error: coded.Reason(), Code: coded.ErrorCode()})
		return
	}

	slog.Error("Unhandled request error", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An internal error occurred"})
}
