package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pipeyard/pipeyard_api/internal/apperrors"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/dto"
	"github.com/pipeyard/pipeyard_api/internal/middleware"
	"github.com/pipeyard/pipeyard_api/internal/utils"
)

// googleOAuthHandler handles the Google sign-in flow for staff accounts
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	adminService       portssvc.AdminSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// newGoogleOAuthHandler creates a new googleOAuthHandler
func newGoogleOAuthHandler(
	gs portssvc.GoogleOAuthSvcFacade,
	as portssvc.AdminSvcFacade,
	ts portssvc.TokenSvcFacade,
) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: gs,
		adminService:       as,
		tokenService:       ts,
	}
}

// registerGoogleOAuthRoutes registers the public Google OAuth routes
func registerGoogleOAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(services.GoogleOAuth, services.Admin, services.Token)

	google := r.Group("/auth/google")
	{
		google.GET("/login", h.loginURL)
		google.POST("/exchange-code", h.exchangeCode)
	}
}

// exchangeCodeRequest is the JSON body for the exchange-code endpoint.
type exchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// loginURL godoc
// @Summary Get the Google consent page URL
// @Description Returns the URL the frontend should redirect to for Google sign-in
// @Tags oauth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string "Internal error"
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) loginURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":   h.googleOAuthService.AuthCodeURL(state),
		"state": state,
	})
}

// exchangeCode godoc
// @Summary Exchange a Google authorization code for a bearer token
// @Description Validates the Google ID token and resolves the account email to an admin
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body exchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid or expired authorization code"
// @Failure 403 {object} map[string]string "No admin account for this Google account"
// @Failure 500 {object} map[string]string "Internal error"
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req exchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind exchange-code payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	email, _, err := h.googleOAuthService.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("Failed to exchange authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired authorization code"})
		return
	}

	admin, err := h.adminService.AuthenticateByGoogle(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "No admin account for this Google account"})
			return
		}
		respondWithError(c, logger, err)
		return
	}

	token, err := h.tokenService.GenerateToken(admin)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AdminID: admin.AdminID,
		Name:    admin.Name,
		Token:   token,
	})
}
