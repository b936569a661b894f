package controllers

import (
	"net/http"

	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/app/services"
	"github.com/emre/classpulse/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthController handles authentication and profile self-service
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles student registration
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	response, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// Login handles email/password authentication
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	response, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// OAuth exchanges an upstream-verified provider profile for a first-party
// token, creating the account on first sight.
func (c *AuthController) OAuth(ctx *gin.Context) {
	var req dto.OAuthRequest
	if !bindJSON(ctx, &req) {
		return
	}

	response, err := c.authService.OAuthLogin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Me returns the caller's profile
func (c *AuthController) Me(ctx *gin.Context) {
	student := middleware.CurrentStudent(ctx)
	ctx.JSON(http.StatusOK, student)
}

// Verify reports that the presented token is valid. Reaching this handler
// means the auth middleware already accepted it.
func (c *AuthController) Verify(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.VerifyResponse{Valid: true})
}

// Logout acknowledges the logout. Tokens are stateless, so the client simply
// discards its copy.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// UpdateProfile applies the self-service mutable fields
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	student := middleware.CurrentStudent(ctx)

	var req dto.UpdateProfileRequest
	if !bindStrictJSON(ctx, &req) {
		return
	}

	response, err := c.authService.UpdateProfile(ctx.Request.Context(), student.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdatePassword changes the caller's password after verifying the current one
func (c *AuthController) UpdatePassword(ctx *gin.Context) {
	student := middleware.CurrentStudent(ctx)

	var req dto.UpdatePasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.UpdatePassword(ctx.Request.Context(), student.ID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated"})
}

// MandatoryUpdate completes a provider-created profile
func (c *AuthController) MandatoryUpdate(ctx *gin.Context) {
	student := middleware.CurrentStudent(ctx)

	var req dto.MandatoryUpdateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	response, err := c.authService.MandatoryUpdate(ctx.Request.Context(), student.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
