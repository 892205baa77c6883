package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pipeyard/pipeyard_api/internal/apperrors"
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/core/services"
	"github.com/pipeyard/pipeyard_api/internal/dto"
)

type ApprovalServiceTestSuite struct {
	suite.Suite
	mockRequestRepo *MockRequestRepository
	mockRackRepo    *MockRackRepository
	mockCompanyRepo *MockCompanyRepository
	mockAuthorizer  *MockAdminAuthorizer
	service         portssvc.ApprovalSvcFacade

	adminID string
	company domain.Company
	request domain.StorageRequest
	rack    domain.Rack
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.mockRequestRepo = new(MockRequestRepository)
	suite.mockRackRepo = new(MockRackRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockAuthorizer = new(MockAdminAuthorizer)
	suite.service = services.NewApprovalService(suite.mockRequestRepo, suite.mockRackRepo, suite.mockCompanyRepo, suite.mockAuthorizer)

	suite.adminID = uuid.NewString()
	suite.company = domain.Company{
		CompanyID: uuid.NewString(),
		Name:      "Gulf Coast Pipe",
		Domain:    "gulfcoastpipe.example.com",
	}
	suite.request = domain.StorageRequest{
		RequestID:      uuid.NewString(),
		CompanyID:      suite.company.CompanyID,
		ReferenceCode:  "SR-1042",
		Status:         domain.PendingApproval,
		RequiredJoints: decimal.NewFromInt(100),
	}
	suite.rack = domain.Rack{
		RackID:   uuid.NewString(),
		Label:    "A-14",
		Capacity: decimal.NewFromInt(500),
		Occupied: decimal.NewFromInt(200),
		IsActive: true,
	}
}

func (suite *ApprovalServiceTestSuite) approvalRequest(joints int64) dto.ApproveRequestRequest {
	return dto.ApproveRequestRequest{
		Allocations: []dto.RackAllocationRequest{
			{RackID: suite.rack.RackID, Joints: decimal.NewFromInt(joints)},
		},
		Notes: "fits on one rack",
	}
}

func (suite *ApprovalServiceTestSuite) TestApproveRequest_Success() {
	ctx := context.Background()
	req := suite.approvalRequest(100)

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, suite.request.RequestID).Return(&suite.request, nil).Once()
	suite.mockRackRepo.On("FindRacksByIDs", ctx, []string{suite.rack.RackID}).
		Return(map[string]domain.Rack{suite.rack.RackID: suite.rack}, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(&suite.company, nil).Once()
	suite.mockRequestRepo.On("ApplyApproval", ctx,
		mock.AnythingOfType("domain.StorageRequest"),
		mock.AnythingOfType("[]domain.RackAllocation"),
		mock.AnythingOfType("domain.AuditLogEntry"),
		mock.AnythingOfType("domain.NotificationTask"),
	).Return(nil).Once()

	result, err := suite.service.ApproveRequest(ctx, suite.request.RequestID, suite.adminID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.Approved, result.Status)
	suite.Equal(suite.request.RequestID, result.RequestID)
	suite.NotEmpty(result.AuditLogID)
	suite.Len(result.Assignments, 1)

	// The whole bundle goes to the repository in one call: updated request,
	// allocations, audit entry and notification task.
	applyCall := suite.mockRequestRepo.Calls[len(suite.mockRequestRepo.Calls)-1]
	suite.Equal("ApplyApproval", applyCall.Method)
	updated := applyCall.Arguments.Get(1).(domain.StorageRequest)
	suite.Equal(domain.Approved, updated.Status)
	suite.Require().NotNil(updated.ApprovedBy)
	suite.Equal(suite.adminID, *updated.ApprovedBy)
	suite.Require().NotNil(updated.DecidedAt)
	auditEntry := applyCall.Arguments.Get(3).(domain.AuditLogEntry)
	suite.Equal(domain.ActionRequestApproved, auditEntry.Action)
	suite.Equal(suite.adminID, auditEntry.ActorID)
	task := applyCall.Arguments.Get(4).(domain.NotificationTask)
	suite.Equal(domain.NotifyRequestApproved, task.Kind)
	suite.Equal(domain.NotificationPending, task.Status)

	suite.mockRequestRepo.AssertExpectations(suite.T())
	suite.mockRackRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestApproveRequest_Forbidden() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(apperrors.ErrForbidden).Once()

	result, err := suite.service.ApproveRequest(ctx, suite.request.RequestID, suite.adminID, suite.approvalRequest(100))

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	// Nothing past the authorization gate runs.
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "FindRequestByID", mock.Anything, mock.Anything)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "ApplyApproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestApproveRequest_NotFound() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, suite.request.RequestID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.ApproveRequest(ctx, suite.request.RequestID, suite.adminID, suite.approvalRequest(100))

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ApprovalServiceTestSuite) TestApproveRequest_AlreadyDecided() {
	ctx := context.Background()
	decided := suite.request
	decided.Status = domain.Approved

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, suite.request.RequestID).Return(&decided, nil).Once()

	result, err := suite.service.ApproveRequest(ctx, suite.request.RequestID, suite.adminID, suite.approvalRequest(100))

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "ApplyApproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestApproveRequest_AllocationSumMismatch() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, suite.request.RequestID).Return(&suite.request, nil).Once()

	// 60 joints allocated against 100 required
	result, err := suite.service.ApproveRequest(ctx, suite.request.RequestID, suite.adminID, suite.approvalRequest(60))

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ApprovalServiceTestSuite) TestApproveRequest_DuplicateRack() {
	ctx := context.Background()
	req := dto.ApproveRequestRequest{
		Allocations: []dto.RackAllocationRequest{
			{RackID: suite.rack.RackID, Joints: decimal.NewFromInt(50)},
			{RackID: suite.rack.RackID, Joints: decimal.NewFromInt(50)},
		},
	}

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, suite.request.RequestID).Return(&suite.request, nil).Once()

	result, err := suite.service.ApproveRequest(ctx, suite.request.RequestID, suite.adminID, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ApprovalServiceTestSuite) TestApproveRequest_CapacityExceeded() {
	ctx := context.Background()
	smallRack := suite.rack
	smallRack.Capacity = decimal.NewFromInt(250) // only 50 free

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, suite.request.RequestID).Return(&suite.request, nil).Once()
	suite.mockRackRepo.On("FindRacksByIDs", ctx, []string{suite.rack.RackID}).
		Return(map[string]domain.Rack{suite.rack.RackID: smallRack}, nil).Once()

	result, err := suite.service.ApproveRequest(ctx, suite.request.RequestID, suite.adminID, suite.approvalRequest(100))

	suite.Require().Error(err)
	suite.Nil(result)
	var capErr *apperrors.CapacityError
	suite.Require().True(errors.As(err, &capErr))
	suite.Equal(suite.rack.RackID, capErr.RackID)
	suite.True(capErr.Available.Equal(decimal.NewFromInt(50)))
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "ApplyApproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestApproveRequest_InactiveRack() {
	ctx := context.Background()
	inactive := suite.rack
	inactive.IsActive = false

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, suite.request.RequestID).Return(&suite.request, nil).Once()
	suite.mockRackRepo.On("FindRacksByIDs", ctx, []string{suite.rack.RackID}).
		Return(map[string]domain.Rack{suite.rack.RackID: inactive}, nil).Once()

	result, err := suite.service.ApproveRequest(ctx, suite.request.RequestID, suite.adminID, suite.approvalRequest(100))

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *ApprovalServiceTestSuite) TestApproveRequest_TransactionConflictPropagates() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, suite.request.RequestID).Return(&suite.request, nil).Once()
	suite.mockRackRepo.On("FindRacksByIDs", ctx, []string{suite.rack.RackID}).
		Return(map[string]domain.Rack{suite.rack.RackID: suite.rack}, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(&suite.company, nil).Once()
	// Another admin won the race inside the transaction.
	suite.mockRequestRepo.On("ApplyApproval", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.ErrConflict).Once()

	result, err := suite.service.ApproveRequest(ctx, suite.request.RequestID, suite.adminID, suite.approvalRequest(100))

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ApprovalServiceTestSuite) TestRejectRequest_Success() {
	ctx := context.Background()
	req := dto.RejectRequestRequest{Reason: "no free racks this month"}

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, suite.request.RequestID).Return(&suite.request, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(&suite.company, nil).Once()
	suite.mockRequestRepo.On("ApplyRejection", ctx,
		mock.AnythingOfType("domain.StorageRequest"),
		mock.AnythingOfType("domain.AuditLogEntry"),
		mock.AnythingOfType("domain.NotificationTask"),
	).Return(nil).Once()

	result, err := suite.service.RejectRequest(ctx, suite.request.RequestID, suite.adminID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.Rejected, result.Status)
	suite.Equal(req.Reason, result.Reason)

	applyCall := suite.mockRequestRepo.Calls[len(suite.mockRequestRepo.Calls)-1]
	updated := applyCall.Arguments.Get(1).(domain.StorageRequest)
	suite.Equal(domain.Rejected, updated.Status)
	suite.Equal(req.Reason, updated.RejectionReason)
	auditEntry := applyCall.Arguments.Get(2).(domain.AuditLogEntry)
	suite.Equal(domain.ActionRequestRejected, auditEntry.Action)
	task := applyCall.Arguments.Get(3).(domain.NotificationTask)
	suite.Equal(domain.NotifyRequestRejected, task.Kind)

	// A rejection never touches rack state.
	suite.mockRackRepo.AssertNotCalled(suite.T(), "FindRacksByIDs", mock.Anything, mock.Anything)
	suite.mockRackRepo.AssertNotCalled(suite.T(), "IncrementRackOccupancyInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestRejectRequest_AlreadyDecided() {
	ctx := context.Background()
	decided := suite.request
	decided.Status = domain.Rejected

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, suite.request.RequestID).Return(&decided, nil).Once()

	result, err := suite.service.RejectRequest(ctx, suite.request.RequestID, suite.adminID, dto.RejectRequestRequest{Reason: "late"})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "ApplyRejection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
