package services

import (
	"context"

	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/dto"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
)

// auditService exposes the audit trail for the dashboard activity view.
// Writes happen only inside the approval transactions; this is read-only.
type auditService struct {
	auditLogRepo portsrepo.AuditLogRepositoryFacade
	authorizer   portssvc.AdminAuthorizerSvc
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditLogRepo portsrepo.AuditLogRepositoryFacade, authorizer portssvc.AdminAuthorizerSvc) portssvc.AuditSvcFacade {
	return &auditService{auditLogRepo: auditLogRepo, authorizer: authorizer}
}

// Ensure auditService implements the portssvc.AuditSvcFacade interface
var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// ListAuditLogs returns a page of entries, newest first.
func (s *auditService) ListAuditLogs(ctx context.Context, adminID string, limit int, nextToken *string) (*dto.ListAuditLogsResponse, error) {
	if err := s.authorizer.AuthorizeAdminAction(ctx, adminID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	entries, newNextToken, err := s.auditLogRepo.ListAuditLogs(ctx, limit, nextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListAuditLogsResponse{Entries: entries, NextToken: newNextToken}, nil
}
