// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qmexai/ramadandata/internal/app/models/dto"
	"github.com/qmexai/ramadandata/internal/app/services"
	"github.com/qmexai/ramadandata/internal/middleware"
	"github.com/rs/zerolog"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	sessionTTL  time.Duration
	cookies     middleware.CookieOptions
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, sessionTTL time.Duration, cookies middleware.CookieOptions, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessionTTL:  sessionTTL,
		cookies:     cookies,
		logger:      logger,
	}
}

// Login handles admin login
// @Summary Admin login
// @Description Verifies the credentials and sets the HttpOnly session cookie. On an empty users table the configured bootstrap pair creates the first superuser.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.SuccessResponse "Login successful, session cookie set"
// @Failure 400 {object} dto.ErrorResponse "Missing username or password"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.SetSessionCookie(ctx, result.Token, c.sessionTTL, c.cookies)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Logout clears the session cookie
// @Summary Logout
// @Description Expires the session cookie. Tokens are stateless, so nothing is revoked server side.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	middleware.ClearSessionCookie(ctx, c.cookies)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Me returns the signed-in account
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse "Signed-in account"
// @Failure 401 {object} dto.ErrorResponse "No valid session"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	session := middleware.GetSession(ctx)
	if session == nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Unauthorized"))
		return
	}
	ctx.JSON(http.StatusOK, dto.SessionResponse{ID: session.ID, Role: session.Role, Name: session.Name})
}
