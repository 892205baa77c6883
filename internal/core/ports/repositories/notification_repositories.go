package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
)

// NotificationRepositoryFacade defines persistence operations for the durable
// notification queue. Tasks are enqueued inside the approval transaction and
// consumed by the external delivery worker.
type NotificationRepositoryFacade interface {
	// InsertTaskInTx enqueues one pending task within the given transaction.
	InsertTaskInTx(ctx context.Context, tx pgx.Tx, task domain.NotificationTask) error
	// ClaimNextPending locks and returns the oldest pending task, or
	// apperrors.ErrNotFound when the queue is empty. Uses SKIP LOCKED so
	// concurrent workers never claim the same task.
	ClaimNextPending(ctx context.Context) (*domain.NotificationTask, error)
	// MarkSent transitions a task to SENT.
	MarkSent(ctx context.Context, taskID string) error
	// MarkFailed transitions a task to FAILED and bumps the attempt count.
	MarkFailed(ctx context.Context, taskID string) error
}
