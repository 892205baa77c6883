package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/pipeyard/pipeyard_api/internal/apperrors"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/dto"
	"github.com/pipeyard/pipeyard_api/internal/middleware"
)

// authHandler handles password authentication for admins
type authHandler struct {
	adminService portssvc.AdminSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// newAuthHandler creates a new authHandler
func newAuthHandler(as portssvc.AdminSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{adminService: as, tokenService: ts}
}

// registerAuthRoutes registers the public authentication routes
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Admin, services.Token)

	// Tight per-IP limit on credential guessing: 5 attempts per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.login)
	}
}

// login godoc
// @Summary Admin password login
// @Description Verifies the email/password pair and issues a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 403 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal error"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind login payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	admin, err := h.adminService.AuthenticateByPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid credentials"})
			return
		}
		respondWithError(c, logger, err)
		return
	}

	token, err := h.tokenService.GenerateToken(admin)
	if err != nil {
		logger.Error("Failed to generate token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AdminID: admin.AdminID,
		Name:    admin.Name,
		Token:   token,
	})
}
