package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus indicates where a storage request sits in its workflow.
type RequestStatus string

const (
	PendingApproval RequestStatus = "PENDING_APPROVAL"
	Approved        RequestStatus = "APPROVED"
	LoadScheduled   RequestStatus = "LOAD_SCHEDULED"
	InStorage       RequestStatus = "IN_STORAGE"
	PickupRequested RequestStatus = "PICKUP_REQUESTED"
	Complete        RequestStatus = "COMPLETE"
	Rejected        RequestStatus = "REJECTED"
)

// CanApprove reports whether the status permits the approve/reject transition.
// Only pending requests may be decided; everything else is a state conflict.
func (s RequestStatus) CanApprove() bool {
	return s == PendingApproval
}

// IsTerminal reports whether no further transitions are possible.
func (s RequestStatus) IsTerminal() bool {
	return s == Complete || s == Rejected
}

// StorageRequest represents a company's request to store pipe joints in the yard.
// After creation it is mutated only by the approval workflow; downstream
// operational states are written by the load/pickup flows and read here.
type StorageRequest struct {
	RequestID       string           `json:"requestID"`      // Primary Key (UUID)
	CompanyID       string           `json:"companyID"`      // FK -> companies.company_id
	ReferenceCode   string           `json:"referenceCode"`  // Human-facing code, unique per request
	Status          RequestStatus    `json:"status"`
	RequiredJoints  decimal.Decimal  `json:"requiredJoints"` // Capacity the request needs
	AdminNotes      string           `json:"adminNotes"`
	RejectionReason string           `json:"rejectionReason"`
	ApprovedBy      *string          `json:"approvedBy"` // AdminID, nil until decided
	DecidedAt       *time.Time       `json:"decidedAt"`
	Assignments     []RackAllocation `json:"assignments"` // Populated on detail reads
	AuditFields
}

// RackAllocation assigns a share of a request's joints to a single rack.
type RackAllocation struct {
	RackID string          `json:"rackID"`
	Joints decimal.Decimal `json:"joints"`
}

// ApprovalResult is returned by a successful approval.
type ApprovalResult struct {
	RequestID   string           `json:"requestID"`
	Status      RequestStatus    `json:"status"`
	Assignments []RackAllocation `json:"assignments"`
	AuditLogID  string           `json:"auditLogID"`
	DecidedAt   time.Time        `json:"decidedAt"`
}

// RejectionResult is returned by a successful rejection.
type RejectionResult struct {
	RequestID  string        `json:"requestID"`
	Status     RequestStatus `json:"status"`
	Reason     string        `json:"reason"`
	AuditLogID string        `json:"auditLogID"`
	DecidedAt  time.Time     `json:"decidedAt"`
}
