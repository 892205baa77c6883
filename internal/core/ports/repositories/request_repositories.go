package repositories

import (
	"context"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
)

// RequestRepositoryFacade defines persistence operations for storage requests,
// including the atomic approval/rejection writes.
type RequestRepositoryFacade interface {
	SaveStorageRequest(ctx context.Context, request domain.StorageRequest) error
	// FindRequestByID retrieves a request, returning apperrors.ErrNotFound when absent.
	FindRequestByID(ctx context.Context, requestID string) (*domain.StorageRequest, error)
	// ListRequestsByCompany returns a token-paginated page of requests for a
	// company, newest first, optionally filtered by status.
	ListRequestsByCompany(ctx context.Context, companyID string, status *domain.RequestStatus, limit int, nextToken *string) ([]domain.StorageRequest, *string, error)
	// FindAssignmentsByRequestIDs returns rack allocations grouped by request id.
	// Requests with no assignments map to an empty slice.
	FindAssignmentsByRequestIDs(ctx context.Context, requestIDs []string) (map[string][]domain.RackAllocation, error)

	// ApplyApproval atomically transitions the request to APPROVED and applies
	// the whole approval bundle: request update, assignment rows, rack
	// occupancy increments, one audit entry, one notification task. The
	// request row and every named rack row are locked for the duration; the
	// pending-status and capacity checks are re-run under those locks.
	// Returns apperrors.ErrConflict when the request is no longer pending and
	// *apperrors.CapacityError when a rack cannot hold its allocation.
	ApplyApproval(ctx context.Context, request domain.StorageRequest, allocations []domain.RackAllocation, auditEntry domain.AuditLogEntry, task domain.NotificationTask) error

	// ApplyRejection atomically transitions the request to REJECTED with the
	// audit entry and notification task. No rack is touched.
	ApplyRejection(ctx context.Context, request domain.StorageRequest, auditEntry domain.AuditLogEntry, task domain.NotificationTask) error
}
