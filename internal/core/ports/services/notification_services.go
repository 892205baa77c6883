package services

import (
	"context"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
)

// NotificationSvcFacade is consumed by the external delivery worker to drain
// the durable notification queue.
type NotificationSvcFacade interface {
	// ClaimNextPending returns the oldest pending task, or
	// apperrors.ErrNotFound when the queue is empty.
	ClaimNextPending(ctx context.Context) (*domain.NotificationTask, error)
	MarkSent(ctx context.Context, taskID string) error
	MarkFailed(ctx context.Context, taskID string) error
}
