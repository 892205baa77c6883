package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pipeyard/pipeyard_api/internal/apperrors"
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/dto"
	"github.com/pipeyard/pipeyard_api/internal/middleware"
)

var (
	ErrAllocationNotPositive = errors.New("every rack allocation must be a positive joint count")
	ErrAllocationDuplicate   = errors.New("a rack appears more than once in the allocations")
	ErrAllocationSumMismatch = errors.New("allocations must sum to the request's required joints")
	ErrRackInactive          = errors.New("rack is not active")
)

// approvalService executes the approve/reject transitions for storage
// requests. Friendly validation happens here; the authoritative status and
// capacity checks run again inside the repository transaction under row
// locks.
type approvalService struct {
	requestRepo portsrepo.RequestRepositoryFacade
	rackRepo    portsrepo.RackRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
	authorizer  portssvc.AdminAuthorizerSvc
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(
	requestRepo portsrepo.RequestRepositoryFacade,
	rackRepo portsrepo.RackRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
	authorizer portssvc.AdminAuthorizerSvc,
) portssvc.ApprovalSvcFacade {
	return &approvalService{
		requestRepo: requestRepo,
		rackRepo:    rackRepo,
		companyRepo: companyRepo,
		authorizer:  authorizer,
	}
}

// Ensure approvalService implements the portssvc.ApprovalSvcFacade interface
var _ portssvc.ApprovalSvcFacade = (*approvalService)(nil)

// validateAllocations checks the allocation list in isolation: positive
// joints, no duplicate racks, and a sum equal to the request's requirement.
func (s *approvalService) validateAllocations(allocations []domain.RackAllocation, requiredJoints decimal.Decimal) error {
	seen := make(map[string]struct{}, len(allocations))
	sum := decimal.Zero
	for _, alloc := range allocations {
		if !alloc.Joints.IsPositive() {
			return fmt.Errorf("%w: rack %s has %s", ErrAllocationNotPositive, alloc.RackID, alloc.Joints.String())
		}
		if _, dup := seen[alloc.RackID]; dup {
			return fmt.Errorf("%w: rack %s", ErrAllocationDuplicate, alloc.RackID)
		}
		seen[alloc.RackID] = struct{}{}
		sum = sum.Add(alloc.Joints)
	}
	if !sum.Equal(requiredJoints) {
		return fmt.Errorf("%w: allocations sum to %s, request requires %s",
			ErrAllocationSumMismatch, sum.String(), requiredJoints.String())
	}
	return nil
}

// checkRacks verifies every allocated rack exists, is active and currently
// has room. This is a friendly pre-check; the repository re-runs the capacity
// check under locks before committing.
func (s *approvalService) checkRacks(ctx context.Context, allocations []domain.RackAllocation) error {
	rackIDs := make([]string, len(allocations))
	for i, alloc := range allocations {
		rackIDs[i] = alloc.RackID
	}
	racks, err := s.rackRepo.FindRacksByIDs(ctx, rackIDs)
	if err != nil {
		return fmt.Errorf("failed to load racks: %w", err)
	}
	for _, alloc := range allocations {
		rack, found := racks[alloc.RackID]
		if !found {
			return fmt.Errorf("%w: rack %s", apperrors.ErrNotFound, alloc.RackID)
		}
		if !rack.IsActive {
			return fmt.Errorf("%w: %s", ErrRackInactive, alloc.RackID)
		}
		if !rack.CanHold(alloc.Joints) {
			return apperrors.NewCapacityError(alloc.RackID, alloc.Joints, rack.Available())
		}
	}
	return nil
}

// notificationPayload is the JSON body handed to the delivery worker.
type notificationPayload struct {
	RequestID     string `json:"requestID"`
	ReferenceCode string `json:"referenceCode"`
	CompanyName   string `json:"companyName"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
}

// buildNotificationTask derives the recipient from the company's contact
// domain and serializes the decision payload.
func (s *approvalService) buildNotificationTask(request domain.StorageRequest, company domain.Company, kind domain.NotificationKind, reason string, now time.Time) (domain.NotificationTask, error) {
	payload, err := json.Marshal(notificationPayload{
		RequestID:     request.RequestID,
		ReferenceCode: request.ReferenceCode,
		CompanyName:   company.Name,
		Status:        string(request.Status),
		Reason:        reason,
	})
	if err != nil {
		return domain.NotificationTask{}, fmt.Errorf("failed to marshal notification payload: %w", err)
	}
	return domain.NotificationTask{
		TaskID:    uuid.NewString(),
		RequestID: request.RequestID,
		Kind:      kind,
		Recipient: "storage@" + company.Domain,
		Payload:   string(payload),
		Status:    domain.NotificationPending,
		Attempts:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ApproveRequest transitions a pending request to APPROVED. The request
// update, rack assignments, occupancy increments, audit entry and
// notification task commit or roll back as one unit.
func (s *approvalService) ApproveRequest(ctx context.Context, requestID string, adminID string, req dto.ApproveRequestRequest) (*domain.ApprovalResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeAdminAction(ctx, adminID); err != nil {
		return nil, err
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !request.Status.CanApprove() {
		return nil, fmt.Errorf("%w: request %s is %s, not %s",
			apperrors.ErrConflict, requestID, request.Status, domain.PendingApproval)
	}

	allocations := req.ToDomainAllocations()
	if err := s.validateAllocations(allocations, request.RequiredJoints); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := s.checkRacks(ctx, allocations); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, request.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company %s: %w", request.CompanyID, err)
	}

	now := time.Now().UTC()
	updated := *request
	updated.Status = domain.Approved
	updated.AdminNotes = req.Notes
	updated.ApprovedBy = &adminID
	updated.DecidedAt = &now
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = adminID

	detail, err := json.Marshal(map[string]interface{}{
		"allocations": allocations,
		"notes":       req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit detail: %w", err)
	}
	auditEntry := domain.AuditLogEntry{
		AuditLogID: uuid.NewString(),
		ActorID:    adminID,
		Action:     domain.ActionRequestApproved,
		EntityKind: "storage_request",
		EntityID:   requestID,
		Detail:     string(detail),
		CreatedAt:  now,
	}

	task, err := s.buildNotificationTask(updated, *company, domain.NotifyRequestApproved, "", now)
	if err != nil {
		return nil, err
	}

	if err := s.requestRepo.ApplyApproval(ctx, updated, allocations, auditEntry, task); err != nil {
		logger.Error("Approval transaction failed",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Request approved",
		slog.String("request_id", requestID),
		slog.String("admin_id", adminID),
		slog.Int("rack_count", len(allocations)),
	)
	return &domain.ApprovalResult{
		RequestID:   requestID,
		Status:      domain.Approved,
		Assignments: allocations,
		AuditLogID:  auditEntry.AuditLogID,
		DecidedAt:   now,
	}, nil
}

// RejectRequest transitions a pending request to REJECTED with the given
// reason. Rack occupancy is untouched.
func (s *approvalService) RejectRequest(ctx context.Context, requestID string, adminID string, req dto.RejectRequestRequest) (*domain.RejectionResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeAdminAction(ctx, adminID); err != nil {
		return nil, err
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !request.Status.CanApprove() {
		return nil, fmt.Errorf("%w: request %s is %s, not %s",
			apperrors.ErrConflict, requestID, request.Status, domain.PendingApproval)
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, request.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company %s: %w", request.CompanyID, err)
	}

	now := time.Now().UTC()
	updated := *request
	updated.Status = domain.Rejected
	updated.RejectionReason = req.Reason
	updated.ApprovedBy = &adminID
	updated.DecidedAt = &now
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = adminID

	detail, err := json.Marshal(map[string]interface{}{"reason": req.Reason})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit detail: %w", err)
	}
	auditEntry := domain.AuditLogEntry{
		AuditLogID: uuid.NewString(),
		ActorID:    adminID,
		Action:     domain.ActionRequestRejected,
		EntityKind: "storage_request",
		EntityID:   requestID,
		Detail:     string(detail),
		CreatedAt:  now,
	}

	task, err := s.buildNotificationTask(updated, *company, domain.NotifyRequestRejected, req.Reason, now)
	if err != nil {
		return nil, err
	}

	if err := s.requestRepo.ApplyRejection(ctx, updated, auditEntry, task); err != nil {
		logger.Error("Rejection transaction failed",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Request rejected",
		slog.String("request_id", requestID),
		slog.String("admin_id", adminID),
	)
	return &domain.RejectionResult{
		RequestID:  requestID,
		Status:     domain.Rejected,
		Reason:     req.Reason,
		AuditLogID: auditEntry.AuditLogID,
		DecidedAt:  now,
	}, nil
}
