package models

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

// StorageRequest mirrors the storage_requests table.
type StorageRequest struct {
	RequestID       string          `json:"requestID"`
	CompanyID       string          `json:"companyID"`
	ReferenceCode   string          `json:"referenceCode"`
	Status          RequestStatus   `json:"status"`
	RequiredJoints  decimal.Decimal `json:"requiredJoints"`
	AdminNotes      string          `json:"adminNotes"`
	RejectionReason string          `json:"rejectionReason"`
	ApprovedBy      *string         `json:"approvedBy"`
	DecidedAt       *time.Time      `json:"decidedAt"`
	AuditFields
}

// RackAssignment mirrors the request_rack_assignments join table.
type RackAssignment struct {
	RequestID string          `json:"requestID"`
	RackID    string          `json:"rackID"`
	Joints    decimal.Decimal `json:"joints"`
}
