package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pipeyard/pipeyard_api/internal/apperrors"
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
	"github.com/pipeyard/pipeyard_api/internal/models"
	"github.com/pipeyard/pipeyard_api/internal/utils/mapping"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for the notification queue.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

// InsertTaskInTx enqueues one pending task within the given transaction.
func (r *PgxNotificationRepository) InsertTaskInTx(ctx context.Context, tx pgx.Tx, task domain.NotificationTask) error {
	query := `
		INSERT INTO notification_tasks (task_id, request_id, kind, recipient, payload, status, attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		task.TaskID,
		task.RequestID,
		string(task.Kind),
		task.Recipient,
		task.Payload,
		string(task.Status),
		task.Attempts,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert notification task "+task.TaskID, err)
	}
	return nil
}

// ClaimNextPending claims the oldest pending task by bumping its attempt
// count in the same statement that selects it. SKIP LOCKED keeps concurrent
// workers from fighting over the same row; each claim is atomic, so a task is
// handed to exactly one worker.
func (r *PgxNotificationRepository) ClaimNextPending(ctx context.Context) (*domain.NotificationTask, error) {
	query := `
		UPDATE notification_tasks
		SET attempts = attempts + 1, updated_at = $1
		WHERE task_id = (
			SELECT task_id
			FROM notification_tasks
			WHERE status = 'PENDING'
			ORDER BY created_at, task_id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING task_id, request_id, kind, recipient, payload, status, attempts, created_at, updated_at;
	`
	var m models.NotificationTask
	err := r.Pool.QueryRow(ctx, query, time.Now().UTC()).Scan(
		&m.TaskID,
		&m.RequestID,
		&m.Kind,
		&m.Recipient,
		&m.Payload,
		&m.Status,
		&m.Attempts,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to claim pending notification task", err)
	}

	task := mapping.ToDomainNotificationTask(m)
	return &task, nil
}

// MarkSent transitions a task to SENT.
func (r *PgxNotificationRepository) MarkSent(ctx context.Context, taskID string) error {
	query := `
		UPDATE notification_tasks
		SET status = 'SENT', updated_at = $1
		WHERE task_id = $2;
	`
	ct, err := r.Pool.Exec(ctx, query, time.Now().UTC(), taskID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark notification task sent "+taskID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkFailed transitions a task to FAILED and bumps its attempt count.
func (r *PgxNotificationRepository) MarkFailed(ctx context.Context, taskID string) error {
	query := `
		UPDATE notification_tasks
		SET status = 'FAILED', attempts = attempts + 1, updated_at = $1
		WHERE task_id = $2;
	`
	ct, err := r.Pool.Exec(ctx, query, time.Now().UTC(), taskID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark notification task failed "+taskID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
