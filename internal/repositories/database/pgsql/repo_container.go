package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository against one pool.
// The request repository composes the rack, audit log and notification
// repositories so its approval transaction can reuse their in-tx operations.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	rackRepo := newPgxRackRepository(pool)
	auditLogRepo := newPgxAuditLogRepository(pool)
	notificationRepo := newPgxNotificationRepository(pool)

	return &portsrepo.RepositoryProvider{
		CompanyRepo:      newPgxCompanyRepository(pool),
		RequestRepo:      newPgxRequestRepository(pool, rackRepo, auditLogRepo, notificationRepo),
		RackRepo:         rackRepo,
		SummaryRepo:      newPgxSummaryRepository(pool),
		AuditLogRepo:     auditLogRepo,
		NotificationRepo: notificationRepo,
		AdminRepo:        newPgxAdminRepository(pool),
	}
}
