package dto

import (
	"time"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RackAllocationRequest assigns part of the required joints to one rack.
type RackAllocationRequest struct {
	RackID string          `json:"rackID" binding:"required"`
	Joints decimal.Decimal `json:"joints" binding:"required"`
}

// ApproveRequestRequest is the payload for approving a storage request.
type ApproveRequestRequest struct {
	Allocations []RackAllocationRequest `json:"allocations" binding:"required,min=1,dive"`
	Notes       string                  `json:"notes"`
}

// RejectRequestRequest is the payload for rejecting a storage request.
type RejectRequestRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ApprovalResponse is returned after a successful approval.
type ApprovalResponse struct {
	RequestID   string                  `json:"requestID"`
	Status      string                  `json:"status"`
	Allocations []RackAllocationRequest `json:"allocations"`
	AuditLogID  string                  `json:"auditLogID"`
	DecidedAt   time.Time               `json:"decidedAt"`
}

// RejectionResponse is returned after a successful rejection.
type RejectionResponse struct {
	RequestID  string    `json:"requestID"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason"`
	AuditLogID string    `json:"auditLogID"`
	DecidedAt  time.Time `json:"decidedAt"`
}

// ToDomainAllocations converts the request allocations to domain objects.
func (r ApproveRequestRequest) ToDomainAllocations() []domain.RackAllocation {
	allocations := make([]domain.RackAllocation, len(r.Allocations))
	for i, a := range r.Allocations {
		allocations[i] = domain.RackAllocation{RackID: a.RackID, Joints: a.Joints}
	}
	return allocations
}

// ToApprovalResponse converts a domain ApprovalResult to its response DTO.
func ToApprovalResponse(result *domain.ApprovalResult) ApprovalResponse {
	allocations := make([]RackAllocationRequest, len(result.Assignments))
	for i, a := range result.Assignments {
		allocations[i] = RackAllocationRequest{RackID: a.RackID, Joints: a.Joints}
	}
	return ApprovalResponse{
		RequestID:   result.RequestID,
		Status:      string(result.Status),
		Allocations: allocations,
		AuditLogID:  result.AuditLogID,
		DecidedAt:   result.DecidedAt,
	}
}

// ToRejectionResponse converts a domain RejectionResult to its response DTO.
func ToRejectionResponse(result *domain.RejectionResult) RejectionResponse {
	return RejectionResponse{
		RequestID:  result.RequestID,
		Status:     string(result.Status),
		Reason:     result.Reason,
		AuditLogID: result.AuditLogID,
		DecidedAt:  result.DecidedAt,
	}
}
