package services

import (
	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider.
// The admin service doubles as the authorizer injected into the read and
// write services.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	adminSvc := NewAdminService(repos.AdminRepo)

	return &portssvc.ServiceContainer{
		Summary:      NewSummaryService(repos.CompanyRepo, repos.RequestRepo, repos.SummaryRepo, adminSvc),
		Approval:     NewApprovalService(repos.RequestRepo, repos.RackRepo, repos.CompanyRepo, adminSvc),
		Admin:        adminSvc,
		Audit:        NewAuditService(repos.AuditLogRepo, adminSvc),
		Notification: NewNotificationService(repos.NotificationRepo),
		Token:        NewTokenService(cfg),
		GoogleOAuth:  NewGoogleOAuthService(cfg),
	}
}
