package dto

import (
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
)

// ListAuditLogsResponse is a page of audit entries, newest first.
type ListAuditLogsResponse struct {
	Entries   []domain.AuditLogEntry `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}
