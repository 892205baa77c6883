package models

import "time"

// AuditLogEntry mirrors the audit_logs table. Append-only.
type AuditLogEntry struct {
	AuditLogID string    `json:"auditLogID"`
	ActorID    string    `json:"actorID"`
	Action     string    `json:"action"`
	EntityKind string    `json:"entityKind"`
	EntityID   string    `json:"entityID"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"createdAt"`
}
