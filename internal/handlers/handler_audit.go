package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/middleware"
)

// auditHandler handles HTTP requests for the audit trail
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

// newAuditHandler creates a new auditHandler
func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

// registerAuditRoutes registers routes for the audit activity view
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)
	rg.GET("/audit-logs", h.listAuditLogs)
}

// listAuditLogs godoc
// @Summary List audit log entries
// @Description Returns a token-paginated page of audit entries, newest first
// @Tags audit
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		logger.Error("Admin ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var query struct {
		Limit     int     `form:"limit"`
		NextToken *string `form:"nextToken"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query parameters", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	page, err := h.auditService.ListAuditLogs(c.Request.Context(), adminID, query.Limit, query.NextToken)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
