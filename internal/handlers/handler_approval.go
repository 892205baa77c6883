package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/dto"
	"github.com/pipeyard/pipeyard_api/internal/middleware"
)

// approvalHandler handles HTTP requests for the approve/reject transitions
type approvalHandler struct {
	approvalService portssvc.ApprovalSvcFacade
}

// newApprovalHandler creates a new approvalHandler
func newApprovalHandler(as portssvc.ApprovalSvcFacade) *approvalHandler {
	return &approvalHandler{approvalService: as}
}

// registerApprovalRoutes registers routes for request decisions
func registerApprovalRoutes(rg *gin.RouterGroup, approvalService portssvc.ApprovalSvcFacade) {
	h := newApprovalHandler(approvalService)

	requests := rg.Group("/requests")
	{
		requests.POST("/:request_id/approve", h.approveRequest)
		requests.POST("/:request_id/reject", h.rejectRequest)
	}
}

// approveRequest godoc
// @Summary Approve a storage request
// @Description Atomically approves a pending request, assigning racks and incrementing their occupancy
// @Tags requests
// @Accept json
// @Produce json
// @Param request_id path string true "Request ID"
// @Param approval body dto.ApproveRequestRequest true "Rack allocations and optional notes"
// @Success 200 {object} dto.ApprovalResponse
// @Failure 400 {object} map[string]string "Invalid payload or allocations"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Request or rack not found"
// @Failure 409 {object} map[string]string "Request not pending or rack capacity exceeded"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /requests/{request_id}/approve [post]
func (h *approvalHandler) approveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("request_id")

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		logger.Error("Admin ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ApproveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind approval payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger = logger.With(slog.String("request_id", requestID))
	logger.Info("Received approval request", slog.Int("allocation_count", len(req.Allocations)))

	result, err := h.approvalService.ApproveRequest(c.Request.Context(), requestID, adminID, req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToApprovalResponse(result))
}

// rejectRequest godoc
// @Summary Reject a storage request
// @Description Atomically rejects a pending request with a reason. Rack occupancy is untouched
// @Tags requests
// @Accept json
// @Produce json
// @Param request_id path string true "Request ID"
// @Param rejection body dto.RejectRequestRequest true "Rejection reason"
// @Success 200 {object} dto.RejectionResponse
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Request not pending"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /requests/{request_id}/reject [post]
func (h *approvalHandler) rejectRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("request_id")

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		logger.Error("Admin ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.RejectRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind rejection payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger = logger.With(slog.String("request_id", requestID))
	logger.Info("Received rejection request")

	result, err := h.approvalService.RejectRequest(c.Request.Context(), requestID, adminID, req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRejectionResponse(result))
}
