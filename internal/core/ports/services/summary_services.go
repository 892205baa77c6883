package services

import (
	"context"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	"github.com/pipeyard/pipeyard_api/internal/dto"
)

// SummarySvcFacade is the read side of the dashboard: company summaries and
// detail trees assembled without per-entity query fan-out.
type SummarySvcFacade interface {
	// ListCompanySummaries returns every company with zero-defaulted aggregate
	// counts, ordered by name then id. Pure read; safe to call concurrently.
	ListCompanySummaries(ctx context.Context, adminID string) ([]domain.CompanySummary, error)
	// GetCompanyDetail returns the nested request/load/document/inventory tree
	// for one company.
	GetCompanyDetail(ctx context.Context, companyID string, adminID string) (*domain.CompanyDetail, error)
	// ListStorageRequests returns a token-paginated page of one company's requests.
	ListStorageRequests(ctx context.Context, companyID string, adminID string, params dto.ListRequestsParams) (*dto.ListRequestsResponse, error)
}
