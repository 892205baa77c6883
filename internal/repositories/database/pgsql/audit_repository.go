package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pipeyard/pipeyard_api/internal/apperrors"
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
	"github.com/pipeyard/pipeyard_api/internal/models"
	"github.com/pipeyard/pipeyard_api/internal/utils/mapping"
	"github.com/pipeyard/pipeyard_api/internal/utils/pagination"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

// newPgxAuditLogRepository creates a new repository for the audit trail.
func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAuditLogRepository implements portsrepo.AuditLogRepositoryFacade
var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

// InsertAuditLogInTx appends one audit entry within the given transaction.
func (r *PgxAuditLogRepository) InsertAuditLogInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLogEntry) error {
	query := `
		INSERT INTO audit_logs (audit_log_id, actor_id, action, entity_kind, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		entry.AuditLogID,
		entry.ActorID,
		string(entry.Action),
		entry.EntityKind,
		entry.EntityID,
		entry.Detail,
		entry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log entry "+entry.AuditLogID, err)
	}
	return nil
}

// ListAuditLogs returns a page of entries, newest first, using keyset
// pagination on (created_at, audit_log_id).
func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, limit int, nextToken *string) ([]domain.AuditLogEntry, *string, error) {
	args := []interface{}{}
	query := `
		SELECT audit_log_id, actor_id, action, entity_kind, entity_id, detail, created_at
		FROM audit_logs
	`
	argPos := 1

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" WHERE (created_at, audit_log_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, lastCreatedAt, lastID)
		argPos += 2
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC, audit_log_id DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query audit logs", err)
	}
	defer rows.Close()

	modelEntries := []models.AuditLogEntry{}
	for rows.Next() {
		var m models.AuditLogEntry
		if err := rows.Scan(
			&m.AuditLogID,
			&m.ActorID,
			&m.Action,
			&m.EntityKind,
			&m.EntityID,
			&m.Detail,
			&m.CreatedAt,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan audit log row", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating audit log rows", err)
	}

	var newNextToken *string
	if len(modelEntries) > limit {
		modelEntries = modelEntries[:limit]
		last := modelEntries[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.AuditLogID)
		newNextToken = &token
	}

	entries := make([]domain.AuditLogEntry, len(modelEntries))
	for i, m := range modelEntries {
		entries[i] = mapping.ToDomainAuditLogEntry(m)
	}
	return entries, newNextToken, nil
}
