package domain

import "time"

// AuditAction identifies the kind of state-changing action recorded.
type AuditAction string

const (
	ActionRequestApproved AuditAction = "REQUEST_APPROVED"
	ActionRequestRejected AuditAction = "REQUEST_REJECTED"
)

// AuditLogEntry is an immutable, append-only record of a state-changing
// action. Exactly one entry is written per successful approval or rejection,
// in the same transaction as the state change itself.
type AuditLogEntry struct {
	AuditLogID string      `json:"auditLogID"` // Primary Key (UUID)
	ActorID    string      `json:"actorID"`    // AdminID that performed the action
	Action     AuditAction `json:"action"`
	EntityKind string      `json:"entityKind"` // e.g. "storage_request"
	EntityID   string      `json:"entityID"`
	Detail     string      `json:"detail"` // Free-form JSON payload
	CreatedAt  time.Time   `json:"createdAt"`
}
