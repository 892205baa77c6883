package mapping

import (
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	"github.com/pipeyard/pipeyard_api/internal/models"
)

// ToDomainAdmin converts a model Admin to a domain Admin
func ToDomainAdmin(m models.Admin) domain.Admin {
	return domain.Admin{
		AdminID:      m.AdminID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAuditLogEntry converts a model AuditLogEntry to a domain AuditLogEntry
func ToDomainAuditLogEntry(m models.AuditLogEntry) domain.AuditLogEntry {
	return domain.AuditLogEntry{
		AuditLogID: m.AuditLogID,
		ActorID:    m.ActorID,
		Action:     domain.AuditAction(m.Action),
		EntityKind: m.EntityKind,
		EntityID:   m.EntityID,
		Detail:     m.Detail,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainNotificationTask converts a model NotificationTask to a domain NotificationTask
func ToDomainNotificationTask(m models.NotificationTask) domain.NotificationTask {
	return domain.NotificationTask{
		TaskID:    m.TaskID,
		RequestID: m.RequestID,
		Kind:      domain.NotificationKind(m.Kind),
		Recipient: m.Recipient,
		Payload:   m.Payload,
		Status:    domain.NotificationStatus(m.Status),
		Attempts:  m.Attempts,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
