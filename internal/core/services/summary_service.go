package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/dto"
	"github.com/pipeyard/pipeyard_api/internal/middleware"
)

const (
	defaultRequestPageSize = 25
	maxRequestPageSize     = 100
)

// summaryService assembles the dashboard read views. Every view is built from
// a fixed number of grouped or batched queries regardless of how many
// companies, requests or loads exist.
type summaryService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
	requestRepo portsrepo.RequestRepositoryFacade
	summaryRepo portsrepo.SummaryRepositoryFacade
	authorizer  portssvc.AdminAuthorizerSvc
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(
	companyRepo portsrepo.CompanyRepositoryFacade,
	requestRepo portsrepo.RequestRepositoryFacade,
	summaryRepo portsrepo.SummaryRepositoryFacade,
	authorizer portssvc.AdminAuthorizerSvc,
) portssvc.SummarySvcFacade {
	return &summaryService{
		companyRepo: companyRepo,
		requestRepo: requestRepo,
		summaryRepo: summaryRepo,
		authorizer:  authorizer,
	}
}

// Ensure summaryService implements the portssvc.SummarySvcFacade interface
var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// laterTime returns the later of two optional timestamps.
func laterTime(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil || a.After(*b) {
		return a
	}
	return b
}

// ListCompanySummaries returns one row per company with zero-defaulted
// aggregate counts. Exactly four queries run: the company list plus the three
// grouped aggregates. Companies absent from an aggregate keep zeros.
func (s *summaryService) ListCompanySummaries(ctx context.Context, adminID string) ([]domain.CompanySummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeAdminAction(ctx, adminID); err != nil {
		return nil, err
	}

	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	requestAggs, err := s.summaryRepo.GetRequestAggregates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load request aggregates: %w", err)
	}
	loadAggs, err := s.summaryRepo.GetLoadAggregates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load load aggregates: %w", err)
	}
	inventoryAggs, err := s.summaryRepo.GetInventoryAggregates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory aggregates: %w", err)
	}

	requestByCompany := make(map[string]domain.RequestAggregateRow, len(requestAggs))
	for _, row := range requestAggs {
		requestByCompany[row.CompanyID] = row
	}
	loadByCompany := make(map[string]domain.LoadAggregateRow, len(loadAggs))
	for _, row := range loadAggs {
		loadByCompany[row.CompanyID] = row
	}
	inventoryByCompany := make(map[string]domain.InventoryAggregateRow, len(inventoryAggs))
	for _, row := range inventoryAggs {
		inventoryByCompany[row.CompanyID] = row
	}

	// Companies arrive ordered by name then id; the summaries keep that order.
	summaries := make([]domain.CompanySummary, len(companies))
	for i, company := range companies {
		summary := domain.CompanySummary{
			CompanyID: company.CompanyID,
			Name:      company.Name,
			Domain:    company.Domain,
		}
		if row, found := requestByCompany[company.CompanyID]; found {
			summary.TotalRequests = row.TotalRequests
			summary.PendingRequests = row.PendingRequests
			summary.ApprovedRequests = row.ApprovedRequests
			summary.RejectedRequests = row.RejectedRequests
			summary.LatestActivityAt = row.LatestActivityAt
		}
		if row, found := loadByCompany[company.CompanyID]; found {
			summary.TotalLoads = row.TotalLoads
			summary.InboundLoads = row.InboundLoads
			summary.OutboundLoads = row.OutboundLoads
			summary.LatestActivityAt = laterTime(summary.LatestActivityAt, row.LatestActivityAt)
		}
		if row, found := inventoryByCompany[company.CompanyID]; found {
			summary.TotalInventory = row.TotalInventory
			summary.InStorageItems = row.InStorageItems
		}
		summaries[i] = summary
	}

	logger.Debug("Assembled company summaries", slog.Int("company_count", len(summaries)))
	return summaries, nil
}

// GetCompanyDetail returns the full nested tree for one company. Five queries
// run: company, requests, assignments, loads, documents, plus the inventory
// fetch; none of them fans out per entity.
func (s *summaryService) GetCompanyDetail(ctx context.Context, companyID string, adminID string) (*domain.CompanyDetail, error) {
	if err := s.authorizer.AuthorizeAdminAction(ctx, adminID); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	requests, err := s.summaryRepo.FindRequestsByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requests for company %s: %w", companyID, err)
	}

	requestIDs := make([]string, len(requests))
	for i, req := range requests {
		requestIDs[i] = req.RequestID
	}

	assignmentsByRequest, err := s.requestRepo.FindAssignmentsByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load rack assignments: %w", err)
	}
	loadsByRequest, err := s.summaryRepo.FindLoadsByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load trucking loads: %w", err)
	}

	loadIDs := []string{}
	for _, loads := range loadsByRequest {
		for _, load := range loads {
			loadIDs = append(loadIDs, load.LoadID)
		}
	}
	documentsByLoad, err := s.summaryRepo.FindDocumentsByLoadIDs(ctx, loadIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	inventory, err := s.summaryRepo.FindInventoryByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for company %s: %w", companyID, err)
	}

	detail := &domain.CompanyDetail{
		Company:   *company,
		Requests:  make([]domain.RequestDetail, len(requests)),
		Inventory: inventory,
		Summary:   buildCompanySummary(*company, requests, loadsByRequest, inventory),
	}
	for i, req := range requests {
		req.Assignments = assignmentsByRequest[req.RequestID]
		loads := loadsByRequest[req.RequestID]
		for j := range loads {
			loads[j].Documents = documentsByLoad[loads[j].LoadID]
		}
		detail.Requests[i] = domain.RequestDetail{
			StorageRequest: req,
			Loads:          loads,
		}
	}
	return detail, nil
}

// buildCompanySummary derives the summary block of a detail view from the
// already-fetched rows, so the detail read needs no extra aggregate queries.
func buildCompanySummary(
	company domain.Company,
	requests []domain.StorageRequest,
	loadsByRequest map[string][]domain.TruckingLoad,
	inventory []domain.InventoryItem,
) domain.CompanySummary {
	summary := domain.CompanySummary{
		CompanyID: company.CompanyID,
		Name:      company.Name,
		Domain:    company.Domain,
	}
	for _, req := range requests {
		summary.TotalRequests++
		switch {
		case req.Status == domain.PendingApproval:
			summary.PendingRequests++
		case req.Status == domain.Rejected:
			summary.RejectedRequests++
		default:
			summary.ApprovedRequests++
		}
		updatedAt := req.LastUpdatedAt
		summary.LatestActivityAt = laterTime(summary.LatestActivityAt, &updatedAt)
	}
	for _, loads := range loadsByRequest {
		for _, load := range loads {
			summary.TotalLoads++
			if load.Direction == domain.Inbound {
				summary.InboundLoads++
			} else {
				summary.OutboundLoads++
			}
			updatedAt := load.LastUpdatedAt
			summary.LatestActivityAt = laterTime(summary.LatestActivityAt, &updatedAt)
		}
	}
	for _, item := range inventory {
		summary.TotalInventory++
		if item.Status == domain.ItemInStorage {
			summary.InStorageItems++
		}
	}
	return summary
}

// ListStorageRequests returns a token-paginated page of one company's
// requests, newest first, with rack assignments attached in one batch.
func (s *summaryService) ListStorageRequests(ctx context.Context, companyID string, adminID string, params dto.ListRequestsParams) (*dto.ListRequestsResponse, error) {
	if err := s.authorizer.AuthorizeAdminAction(ctx, adminID); err != nil {
		return nil, err
	}

	// Existence check keeps an unknown company a 404 rather than an empty page.
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultRequestPageSize
	}
	if limit > maxRequestPageSize {
		limit = maxRequestPageSize
	}

	requests, nextToken, err := s.requestRepo.ListRequestsByCompany(ctx, companyID, params.Status, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	requestIDs := make([]string, len(requests))
	for i, req := range requests {
		requestIDs[i] = req.RequestID
	}
	assignmentsByRequest, err := s.requestRepo.FindAssignmentsByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load rack assignments: %w", err)
	}

	resp := &dto.ListRequestsResponse{
		Requests:  make([]dto.StorageRequestResponse, len(requests)),
		NextToken: nextToken,
	}
	for i := range requests {
		requests[i].Assignments = assignmentsByRequest[requests[i].RequestID]
		resp.Requests[i] = dto.ToStorageRequestResponse(&requests[i])
	}
	return resp, nil
}
