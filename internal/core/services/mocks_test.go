package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
)

// --- Mock CompanyRepository ---

type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

// --- Mock RequestRepository ---

type MockRequestRepository struct {
	mock.Mock
}

var _ portsrepo.RequestRepositoryFacade = (*MockRequestRepository)(nil)

func (m *MockRequestRepository) SaveStorageRequest(ctx context.Context, request domain.StorageRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.StorageRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StorageRequest), args.Error(1)
}

func (m *MockRequestRepository) ListRequestsByCompany(ctx context.Context, companyID string, status *domain.RequestStatus, limit int, nextToken *string) ([]domain.StorageRequest, *string, error) {
	args := m.Called(ctx, companyID, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.StorageRequest), returnedNextToken, args.Error(2)
}

func (m *MockRequestRepository) FindAssignmentsByRequestIDs(ctx context.Context, requestIDs []string) (map[string][]domain.RackAllocation, error) {
	args := m.Called(ctx, requestIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.RackAllocation), args.Error(1)
}

func (m *MockRequestRepository) ApplyApproval(ctx context.Context, request domain.StorageRequest, allocations []domain.RackAllocation, auditEntry domain.AuditLogEntry, task domain.NotificationTask) error {
	args := m.Called(ctx, request, allocations, auditEntry, task)
	return args.Error(0)
}

func (m *MockRequestRepository) ApplyRejection(ctx context.Context, request domain.StorageRequest, auditEntry domain.AuditLogEntry, task domain.NotificationTask) error {
	args := m.Called(ctx, request, auditEntry, task)
	return args.Error(0)
}

// --- Mock RackRepository ---

type MockRackRepository struct {
	mock.Mock
}

var _ portsrepo.RackRepositoryFacade = (*MockRackRepository)(nil)

func (m *MockRackRepository) SaveRack(ctx context.Context, rack domain.Rack) error {
	args := m.Called(ctx, rack)
	return args.Error(0)
}

func (m *MockRackRepository) FindRackByID(ctx context.Context, rackID string) (*domain.Rack, error) {
	args := m.Called(ctx, rackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rack), args.Error(1)
}

func (m *MockRackRepository) FindRacksByIDs(ctx context.Context, rackIDs []string) (map[string]domain.Rack, error) {
	args := m.Called(ctx, rackIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Rack), args.Error(1)
}

func (m *MockRackRepository) ListRacks(ctx context.Context) ([]domain.Rack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rack), args.Error(1)
}

func (m *MockRackRepository) FindRacksByIDsForUpdate(ctx context.Context, tx pgx.Tx, rackIDs []string) (map[string]domain.Rack, error) {
	args := m.Called(ctx, tx, rackIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Rack), args.Error(1)
}

func (m *MockRackRepository) IncrementRackOccupancyInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, adminID string, now time.Time) error {
	args := m.Called(ctx, tx, deltas, adminID, now)
	return args.Error(0)
}

// --- Mock SummaryRepository ---

type MockSummaryRepository struct {
	mock.Mock
}

var _ portsrepo.SummaryRepositoryFacade = (*MockSummaryRepository)(nil)

func (m *MockSummaryRepository) GetRequestAggregates(ctx context.Context) ([]domain.RequestAggregateRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequestAggregateRow), args.Error(1)
}

func (m *MockSummaryRepository) GetLoadAggregates(ctx context.Context) ([]domain.LoadAggregateRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoadAggregateRow), args.Error(1)
}

func (m *MockSummaryRepository) GetInventoryAggregates(ctx context.Context) ([]domain.InventoryAggregateRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryAggregateRow), args.Error(1)
}

func (m *MockSummaryRepository) FindRequestsByCompanyID(ctx context.Context, companyID string) ([]domain.StorageRequest, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StorageRequest), args.Error(1)
}

func (m *MockSummaryRepository) FindLoadsByRequestIDs(ctx context.Context, requestIDs []string) (map[string][]domain.TruckingLoad, error) {
	args := m.Called(ctx, requestIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.TruckingLoad), args.Error(1)
}

func (m *MockSummaryRepository) FindDocumentsByLoadIDs(ctx context.Context, loadIDs []string) (map[string][]domain.LoadDocument, error) {
	args := m.Called(ctx, loadIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.LoadDocument), args.Error(1)
}

func (m *MockSummaryRepository) FindInventoryByCompanyID(ctx context.Context, companyID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

// --- Mock AdminRepository ---

type MockAdminRepository struct {
	mock.Mock
}

var _ portsrepo.AdminRepositoryFacade = (*MockAdminRepository)(nil)

func (m *MockAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// --- Mock AuditLogRepository ---

type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepositoryFacade = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) InsertAuditLogInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLogEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListAuditLogs(ctx context.Context, limit int, nextToken *string) ([]domain.AuditLogEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.AuditLogEntry), returnedNextToken, args.Error(2)
}

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

var _ portsrepo.NotificationRepositoryFacade = (*MockNotificationRepository)(nil)

func (m *MockNotificationRepository) InsertTaskInTx(ctx context.Context, tx pgx.Tx, task domain.NotificationTask) error {
	args := m.Called(ctx, tx, task)
	return args.Error(0)
}

func (m *MockNotificationRepository) ClaimNextPending(ctx context.Context) (*domain.NotificationTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationTask), args.Error(1)
}

func (m *MockNotificationRepository) MarkSent(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkFailed(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

// --- Mock AdminAuthorizer ---

type MockAdminAuthorizer struct {
	mock.Mock
}

var _ portssvc.AdminAuthorizerSvc = (*MockAdminAuthorizer)(nil)

func (m *MockAdminAuthorizer) AuthorizeAdminAction(ctx context.Context, adminID string) error {
	args := m.Called(ctx, adminID)
	return args.Error(0)
}
