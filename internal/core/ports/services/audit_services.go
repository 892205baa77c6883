package services

import (
	"context"

	"github.com/pipeyard/pipeyard_api/internal/dto"
)

// AuditSvcFacade exposes the audit trail for the dashboard activity view.
type AuditSvcFacade interface {
	ListAuditLogs(ctx context.Context, adminID string, limit int, nextToken *string) (*dto.ListAuditLogsResponse, error)
}
