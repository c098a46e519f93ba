// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/usecase/auth"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// AuthController serves the /auth routes of remote mode.
type AuthController struct {
	register *auth.RegisterUseCase
	login    *auth.LoginUseCase
	refresh  *auth.RefreshUseCase
	logout   *auth.LogoutUseCase
}

func NewAuthController(
	register *auth.RegisterUseCase,
	login *auth.LoginUseCase,
	refresh *auth.RefreshUseCase,
	logout *auth.LogoutUseCase,
) *AuthController {
	return &AuthController{register: register, login: login, refresh: refresh, logout: logout}
}

// Register handles POST /auth/register.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingFields))
		return
	}

	res, err := c.register.Execute(ctx.Request.Context(), auth.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToAuthResponse(res.Tokens.AccessToken, res.Tokens.RefreshToken, res.User))
}

// Login handles POST /auth/login.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingFields))
		return
	}

	res, err := c.login.Execute(ctx.Request.Context(), auth.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAuthResponse(res.Tokens.AccessToken, res.Tokens.RefreshToken, res.User))
}

// Refresh handles POST /auth/refresh.
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.SessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingToken))
		return
	}

	pair, err := c.refresh.Execute(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// Logout handles POST /auth/logout. It answers 200 whatever the token.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.SessionRequest
	if err := ctx.ShouldBindJSON(&req); err == nil {
		c.logout.Execute(ctx.Request.Context(), req.RefreshToken)
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
}
