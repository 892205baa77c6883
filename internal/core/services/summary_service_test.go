package services_test

import (
	"context"
	"testing"
	"time"

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

type SummaryServiceTestSuite struct {
	suite.Suite
	mockCompanyRepo *MockCompanyRepository
	mockRequestRepo *MockRequestRepository
	mockSummaryRepo *MockSummaryRepository
	mockAuthorizer  *MockAdminAuthorizer
	service         portssvc.SummarySvcFacade

	adminID  string
	companyA domain.Company
	companyB domain.Company
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockRequestRepo = new(MockRequestRepository)
	suite.mockSummaryRepo = new(MockSummaryRepository)
	suite.mockAuthorizer = new(MockAdminAuthorizer)
	suite.service = services.NewSummaryService(suite.mockCompanyRepo, suite.mockRequestRepo, suite.mockSummaryRepo, suite.mockAuthorizer)

	suite.adminID = uuid.NewString()
	suite.companyA = domain.Company{CompanyID: uuid.NewString(), Name: "Alpha Tubulars", Domain: "alpha.example.com"}
	suite.companyB = domain.Company{CompanyID: uuid.NewString(), Name: "Bravo Pipe Co", Domain: "bravo.example.com"}
}

func (suite *SummaryServiceTestSuite) TestListCompanySummaries_ZeroDefaults() {
	ctx := context.Background()
	latest := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockCompanyRepo.On("ListCompanies", ctx).Return([]domain.Company{suite.companyA, suite.companyB}, nil).Once()
	// Only company A has any children; B must come back all zeros.
	suite.mockSummaryRepo.On("GetRequestAggregates", ctx).Return([]domain.RequestAggregateRow{
		{CompanyID: suite.companyA.CompanyID, TotalRequests: 4, PendingRequests: 1, ApprovedRequests: 2, RejectedRequests: 1, LatestActivityAt: &latest},
	}, nil).Once()
	suite.mockSummaryRepo.On("GetLoadAggregates", ctx).Return([]domain.LoadAggregateRow{
		{CompanyID: suite.companyA.CompanyID, TotalLoads: 3, InboundLoads: 2, OutboundLoads: 1},
	}, nil).Once()
	suite.mockSummaryRepo.On("GetInventoryAggregates", ctx).Return([]domain.InventoryAggregateRow{
		{CompanyID: suite.companyA.CompanyID, TotalInventory: 7, InStorageItems: 5},
	}, nil).Once()

	summaries, err := suite.service.ListCompanySummaries(ctx, suite.adminID)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)

	suite.Equal(suite.companyA.CompanyID, summaries[0].CompanyID)
	suite.Equal(4, summaries[0].TotalRequests)
	suite.Equal(1, summaries[0].PendingRequests)
	suite.Equal(3, summaries[0].TotalLoads)
	suite.Equal(7, summaries[0].TotalInventory)
	suite.Require().NotNil(summaries[0].LatestActivityAt)
	suite.True(latest.Equal(*summaries[0].LatestActivityAt))

	suite.Equal(suite.companyB.CompanyID, summaries[1].CompanyID)
	suite.Equal(0, summaries[1].TotalRequests)
	suite.Equal(0, summaries[1].PendingRequests)
	suite.Equal(0, summaries[1].TotalLoads)
	suite.Equal(0, summaries[1].TotalInventory)
	suite.Nil(summaries[1].LatestActivityAt)

	// Exactly four repository reads, no per-company fan-out.
	suite.mockCompanyRepo.AssertNumberOfCalls(suite.T(), "ListCompanies", 1)
	suite.mockSummaryRepo.AssertNumberOfCalls(suite.T(), "GetRequestAggregates", 1)
	suite.mockSummaryRepo.AssertNumberOfCalls(suite.T(), "GetLoadAggregates", 1)
	suite.mockSummaryRepo.AssertNumberOfCalls(suite.T(), "GetInventoryAggregates", 1)
}

func (suite *SummaryServiceTestSuite) TestListCompanySummaries_Forbidden() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(apperrors.ErrForbidden).Once()

	summaries, err := suite.service.ListCompanySummaries(ctx, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(summaries)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "ListCompanies", mock.Anything)
}

func (suite *SummaryServiceTestSuite) TestGetCompanyDetail_NestedTree() {
	ctx := context.Background()
	requestID := uuid.NewString()
	loadID := uuid.NewString()
	rackID := uuid.NewString()

	request := domain.StorageRequest{
		RequestID:      requestID,
		CompanyID:      suite.companyA.CompanyID,
		ReferenceCode:  "SR-2001",
		Status:         domain.InStorage,
		RequiredJoints: decimal.NewFromInt(80),
	}
	load := domain.TruckingLoad{LoadID: loadID, RequestID: requestID, Direction: domain.Inbound, Carrier: "Lone Star Trucking"}
	document := domain.LoadDocument{DocumentID: uuid.NewString(), LoadID: loadID, Kind: "BOL", FileName: "bol-2001.pdf"}
	item := domain.InventoryItem{ItemID: uuid.NewString(), CompanyID: suite.companyA.CompanyID, RequestID: requestID, Joints: decimal.NewFromInt(80), Status: domain.ItemInStorage}

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyA.CompanyID).Return(&suite.companyA, nil).Once()
	suite.mockSummaryRepo.On("FindRequestsByCompanyID", ctx, suite.companyA.CompanyID).Return([]domain.StorageRequest{request}, nil).Once()
	suite.mockRequestRepo.On("FindAssignmentsByRequestIDs", ctx, []string{requestID}).
		Return(map[string][]domain.RackAllocation{requestID: {{RackID: rackID, Joints: decimal.NewFromInt(80)}}}, nil).Once()
	suite.mockSummaryRepo.On("FindLoadsByRequestIDs", ctx, []string{requestID}).
		Return(map[string][]domain.TruckingLoad{requestID: {load}}, nil).Once()
	suite.mockSummaryRepo.On("FindDocumentsByLoadIDs", ctx, []string{loadID}).
		Return(map[string][]domain.LoadDocument{loadID: {document}}, nil).Once()
	suite.mockSummaryRepo.On("FindInventoryByCompanyID", ctx, suite.companyA.CompanyID).Return([]domain.InventoryItem{item}, nil).Once()

	detail, err := suite.service.GetCompanyDetail(ctx, suite.companyA.CompanyID, suite.adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(detail)
	suite.Equal(suite.companyA.CompanyID, detail.Company.CompanyID)
	suite.Require().Len(detail.Requests, 1)
	suite.Require().Len(detail.Requests[0].Assignments, 1)
	suite.Equal(rackID, detail.Requests[0].Assignments[0].RackID)
	suite.Require().Len(detail.Requests[0].Loads, 1)
	suite.Require().Len(detail.Requests[0].Loads[0].Documents, 1)
	suite.Equal("BOL", detail.Requests[0].Loads[0].Documents[0].Kind)
	suite.Require().Len(detail.Inventory, 1)

	// Summary block is derived from the fetched rows.
	suite.Equal(1, detail.Summary.TotalRequests)
	suite.Equal(1, detail.Summary.ApprovedRequests)
	suite.Equal(1, detail.Summary.TotalLoads)
	suite.Equal(1, detail.Summary.InboundLoads)
	suite.Equal(1, detail.Summary.TotalInventory)
	suite.Equal(1, detail.Summary.InStorageItems)
}

func (suite *SummaryServiceTestSuite) TestGetCompanyDetail_CompanyNotFound() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	detail, err := suite.service.GetCompanyDetail(ctx, unknownID, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(detail)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SummaryServiceTestSuite) TestGetCompanyDetail_EmptyCompany() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyB.CompanyID).Return(&suite.companyB, nil).Once()
	suite.mockSummaryRepo.On("FindRequestsByCompanyID", ctx, suite.companyB.CompanyID).Return([]domain.StorageRequest{}, nil).Once()
	suite.mockRequestRepo.On("FindAssignmentsByRequestIDs", ctx, []string{}).Return(map[string][]domain.RackAllocation{}, nil).Once()
	suite.mockSummaryRepo.On("FindLoadsByRequestIDs", ctx, []string{}).Return(map[string][]domain.TruckingLoad{}, nil).Once()
	suite.mockSummaryRepo.On("FindDocumentsByLoadIDs", ctx, []string{}).Return(map[string][]domain.LoadDocument{}, nil).Once()
	suite.mockSummaryRepo.On("FindInventoryByCompanyID", ctx, suite.companyB.CompanyID).Return([]domain.InventoryItem{}, nil).Once()

	detail, err := suite.service.GetCompanyDetail(ctx, suite.companyB.CompanyID, suite.adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(detail)
	suite.Empty(detail.Requests)
	suite.Empty(detail.Inventory)
	suite.Equal(0, detail.Summary.TotalRequests)
	suite.Nil(detail.Summary.LatestActivityAt)
}

func (suite *SummaryServiceTestSuite) TestListStorageRequests_Pagination() {
	ctx := context.Background()
	requestID := uuid.NewString()
	token := "next-page-token"
	status := domain.PendingApproval

	request := domain.StorageRequest{
		RequestID:      requestID,
		CompanyID:      suite.companyA.CompanyID,
		Status:         domain.PendingApproval,
		RequiredJoints: decimal.NewFromInt(40),
	}

	suite.mockAuthorizer.On("AuthorizeAdminAction", ctx, suite.adminID).Return(nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyA.CompanyID).Return(&suite.companyA, nil).Once()
	suite.mockRequestRepo.On("ListRequestsByCompany", ctx, suite.companyA.CompanyID, &status, 10, (*string)(nil)).
		Return([]domain.StorageRequest{request}, token, nil).Once()
	suite.mockRequestRepo.On("FindAssignmentsByRequestIDs", ctx, []string{requestID}).
		Return(map[string][]domain.RackAllocation{requestID: {}}, nil).Once()

	page, err := suite.service.ListStorageRequests(ctx, suite.companyA.CompanyID, suite.adminID, dto.ListRequestsParams{
		Limit:  10,
		Status: &status,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(page)
	suite.Require().Len(page.Requests, 1)
	suite.Equal(requestID, page.Requests[0].RequestID)
	suite.Require().NotNil(page.NextToken)
	suite.Equal(token, *page.NextToken)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
