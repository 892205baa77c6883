package services

import (
	"context"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	"github.com/pipeyard/pipeyard_api/internal/dto"
)

// ApprovalSvcFacade is the write side of the dashboard: the atomic
// approve/reject transitions for storage requests.
type ApprovalSvcFacade interface {
	// ApproveRequest atomically transitions a pending request to APPROVED,
	// assigning racks and incrementing their occupancy, and writes the audit
	// entry and notification task in the same unit of work.
	// Terminal errors: apperrors.ErrForbidden, apperrors.ErrNotFound,
	// apperrors.ErrConflict, *apperrors.CapacityError.
	ApproveRequest(ctx context.Context, requestID string, adminID string, req dto.ApproveRequestRequest) (*domain.ApprovalResult, error)
	// RejectRequest atomically transitions a pending request to REJECTED with
	// the given reason. No rack occupancy changes.
	RejectRequest(ctx context.Context, requestID string, adminID string, req dto.RejectRequestRequest) (*domain.RejectionResult, error)
}
