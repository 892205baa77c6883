package services

import (
	"context"
	"log/slog"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/middleware"
)

// notificationService drains the durable notification queue on behalf of the
// external delivery worker. Enqueueing happens inside the approval
// transactions, never here.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

// Ensure notificationService implements the portssvc.NotificationSvcFacade interface
var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// ClaimNextPending hands the oldest pending task to the caller.
func (s *notificationService) ClaimNextPending(ctx context.Context) (*domain.NotificationTask, error) {
	return s.notificationRepo.ClaimNextPending(ctx)
}

// MarkSent records successful delivery of a task.
func (s *notificationService) MarkSent(ctx context.Context, taskID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.notificationRepo.MarkSent(ctx, taskID); err != nil {
		return err
	}
	logger.Info("Notification task sent", slog.String("task_id", taskID))
	return nil
}

// MarkFailed records a failed delivery attempt.
func (s *notificationService) MarkFailed(ctx context.Context, taskID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.notificationRepo.MarkFailed(ctx, taskID); err != nil {
		return err
	}
	logger.Warn("Notification task failed", slog.String("task_id", taskID))
	return nil
}
