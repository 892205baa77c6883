package dto

import (
	"time"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListRequestsParams holds the pagination and filter parameters for listing
// a company's storage requests.
type ListRequestsParams struct {
	Limit     int
	NextToken *string
	Status    *domain.RequestStatus
}

// StorageRequestResponse is the wire representation of a storage request.
type StorageRequestResponse struct {
	RequestID       string                  `json:"requestID"`
	CompanyID       string                  `json:"companyID"`
	ReferenceCode   string                  `json:"referenceCode"`
	Status          string                  `json:"status"`
	RequiredJoints  decimal.Decimal         `json:"requiredJoints"`
	AdminNotes      string                  `json:"adminNotes,omitempty"`
	RejectionReason string                  `json:"rejectionReason,omitempty"`
	ApprovedBy      *string                 `json:"approvedBy,omitempty"`
	DecidedAt       *time.Time              `json:"decidedAt,omitempty"`
	Assignments     []RackAllocationRequest `json:"assignments,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
}

// ListRequestsResponse is a page of storage requests with the cursor for the
// next page, nil when no further pages exist.
type ListRequestsResponse struct {
	Requests  []StorageRequestResponse `json:"requests"`
	NextToken *string                  `json:"nextToken,omitempty"`
}

// ToStorageRequestResponse converts a domain StorageRequest to its response DTO.
func ToStorageRequestResponse(r *domain.StorageRequest) StorageRequestResponse {
	assignments := make([]RackAllocationRequest, len(r.Assignments))
	for i, a := range r.Assignments {
		assignments[i] = RackAllocationRequest{RackID: a.RackID, Joints: a.Joints}
	}
	return StorageRequestResponse{
		RequestID:       r.RequestID,
		CompanyID:       r.CompanyID,
		ReferenceCode:   r.ReferenceCode,
		Status:          string(r.Status),
		RequiredJoints:  r.RequiredJoints,
		AdminNotes:      r.AdminNotes,
		RejectionReason: r.RejectionReason,
		ApprovedBy:      r.ApprovedBy,
		DecidedAt:       r.DecidedAt,
		Assignments:     assignments,
		CreatedAt:       r.CreatedAt,
	}
}
