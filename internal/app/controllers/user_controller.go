package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qmexai/ramadandata/internal/app/models/dto"
	"github.com/qmexai/ramadandata/internal/app/services"
	"github.com/qmexai/ramadandata/internal/middleware"
	"github.com/rs/zerolog"
)

// UserController handles admin account management
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers lists admin accounts
// @Summary List admin accounts
// @Tags users
// @Produce json
// @Success 200 {array} models.User "Accounts, newest first"
// @Failure 403 {object} dto.ErrorResponse "Superuser session required"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list users")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// CreateUser creates an admin account
// @Summary Create admin account
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Account fields"
// @Success 201 {object} dto.UserResponse "Created account"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid field"
// @Failure 403 {object} dto.ErrorResponse "Superuser session required"
// @Failure 409 {object} dto.ErrorResponse "Username or phone number already exists"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create user payload")
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	user, err := c.userService.CreateUser(ctx.Request.Context(), services.NewUser{
		Name:        req.Name,
		Username:    req.Username,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Failed to create user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if session := middleware.GetSession(ctx); session != nil {
		c.logger.Info().Int64("createdBy", session.ID).Int64("userID", user.ID).Msg("Admin account created")
	}
	ctx.JSON(http.StatusCreated, dto.NewUserResponse(user))
}
