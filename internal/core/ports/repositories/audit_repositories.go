package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
)

// AuditLogRepositoryFacade defines persistence operations for the append-only
// audit trail. Entries are only ever inserted inside an approval transaction.
type AuditLogRepositoryFacade interface {
	// InsertAuditLogInTx appends one entry within the given transaction.
	InsertAuditLogInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLogEntry) error
	// ListAuditLogs returns a token-paginated page of entries, newest first.
	ListAuditLogs(ctx context.Context, limit int, nextToken *string) ([]domain.AuditLogEntry, *string, error)
}
