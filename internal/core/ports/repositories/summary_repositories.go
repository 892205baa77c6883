package repositories

import (
	"context"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
)

// SummaryRepositoryFacade defines the read-only aggregation queries behind the
// dashboard views. Every method runs a single grouped query; none fans out
// per entity.
type SummaryRepositoryFacade interface {
	// GetRequestAggregates returns request counts per company, grouped by
	// company id, with the latest request activity timestamp.
	GetRequestAggregates(ctx context.Context) ([]domain.RequestAggregateRow, error)
	// GetLoadAggregates returns load counts per company (joined through the
	// owning request), grouped by company id.
	GetLoadAggregates(ctx context.Context) ([]domain.LoadAggregateRow, error)
	// GetInventoryAggregates returns inventory counts per company, grouped by
	// company id.
	GetInventoryAggregates(ctx context.Context) ([]domain.InventoryAggregateRow, error)

	// FindRequestsByCompanyID returns every request for one company, newest first.
	FindRequestsByCompanyID(ctx context.Context, companyID string) ([]domain.StorageRequest, error)
	// FindLoadsByRequestIDs returns loads grouped by request id.
	FindLoadsByRequestIDs(ctx context.Context, requestIDs []string) (map[string][]domain.TruckingLoad, error)
	// FindDocumentsByLoadIDs returns documents grouped by load id.
	FindDocumentsByLoadIDs(ctx context.Context, loadIDs []string) (map[string][]domain.LoadDocument, error)
	// FindInventoryByCompanyID returns the company's inventory items.
	FindInventoryByCompanyID(ctx context.Context, companyID string) ([]domain.InventoryItem, error)
}
