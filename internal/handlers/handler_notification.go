package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pipeyard/pipeyard_api/internal/apperrors"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/middleware"
)

// notificationHandler exposes the notification queue to the delivery worker
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// newNotificationHandler creates a new notificationHandler
func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

// registerNotificationRoutes registers the delivery worker routes
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.POST("/claim", h.claimNext)
		notifications.POST("/:task_id/sent", h.markSent)
		notifications.POST("/:task_id/failed", h.markFailed)
	}
}

// claimNext godoc
// @Summary Claim the next pending notification task
// @Description Atomically hands the oldest pending task to the calling worker
// @Tags notifications
// @Produce json
// @Success 200 {object} domain.NotificationTask
// @Success 204 "Queue empty"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /notifications/claim [post]
func (h *notificationHandler) claimNext(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	task, err := h.notificationService.ClaimNextPending(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.Status(http.StatusNoContent)
			return
		}
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// markSent godoc
// @Summary Mark a notification task as sent
// @Tags notifications
// @Produce json
// @Param task_id path string true "Task ID"
// @Success 204 "Marked"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /notifications/{task_id}/sent [post]
func (h *notificationHandler) markSent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.notificationService.MarkSent(c.Request.Context(), c.Param("task_id")); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// markFailed godoc
// @Summary Mark a notification task as failed
// @Tags notifications
// @Produce json
// @Param task_id path string true "Task ID"
// @Success 204 "Marked"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /notifications/{task_id}/failed [post]
func (h *notificationHandler) markFailed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.notificationService.MarkFailed(c.Request.Context(), c.Param("task_id")); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
