package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pipeyard/pipeyard_api/internal/apperrors"
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
	"github.com/pipeyard/pipeyard_api/internal/models"
	"github.com/pipeyard/pipeyard_api/internal/utils/mapping"
)

type PgxSummaryRepository struct {
	BaseRepository
}

// newPgxSummaryRepository creates a new repository for the dashboard
// aggregation queries.
func newPgxSummaryRepository(pool *pgxpool.Pool) portsrepo.SummaryRepositoryFacade {
	return &PgxSummaryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSummaryRepository implements portsrepo.SummaryRepositoryFacade
var _ portsrepo.SummaryRepositoryFacade = (*PgxSummaryRepository)(nil)

// GetRequestAggregates returns per-company request counts in one grouped
// query. Companies without requests produce no row; the service zero-defaults
// them.
func (r *PgxSummaryRepository) GetRequestAggregates(ctx context.Context) ([]domain.RequestAggregateRow, error) {
	query := `
		SELECT
			company_id,
			COUNT(*) AS total_requests,
			SUM(CASE WHEN status = 'PENDING_APPROVAL' THEN 1 ELSE 0 END) AS pending_requests,
			SUM(CASE WHEN status NOT IN ('PENDING_APPROVAL', 'REJECTED') THEN 1 ELSE 0 END) AS approved_requests,
			SUM(CASE WHEN status = 'REJECTED' THEN 1 ELSE 0 END) AS rejected_requests,
			MAX(last_updated_at) AS latest_activity_at
		FROM storage_requests
		GROUP BY company_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query request aggregates", err)
	}
	defer rows.Close()

	aggregates := []domain.RequestAggregateRow{}
	for rows.Next() {
		var row domain.RequestAggregateRow
		if err := rows.Scan(
			&row.CompanyID,
			&row.TotalRequests,
			&row.PendingRequests,
			&row.ApprovedRequests,
			&row.RejectedRequests,
			&row.LatestActivityAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan request aggregate row", err)
		}
		aggregates = append(aggregates, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating request aggregate rows", err)
	}
	return aggregates, nil
}

// GetLoadAggregates returns per-company load counts, joined through the owning
// request, in one grouped query.
func (r *PgxSummaryRepository) GetLoadAggregates(ctx context.Context) ([]domain.LoadAggregateRow, error) {
	query := `
		SELECT
			sr.company_id,
			COUNT(*) AS total_loads,
			SUM(CASE WHEN tl.direction = 'INBOUND' THEN 1 ELSE 0 END) AS inbound_loads,
			SUM(CASE WHEN tl.direction = 'OUTBOUND' THEN 1 ELSE 0 END) AS outbound_loads,
			MAX(tl.last_updated_at) AS latest_activity_at
		FROM trucking_loads tl
		JOIN storage_requests sr ON sr.request_id = tl.request_id
		GROUP BY sr.company_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query load aggregates", err)
	}
	defer rows.Close()

	aggregates := []domain.LoadAggregateRow{}
	for rows.Next() {
		var row domain.LoadAggregateRow
		if err := rows.Scan(
			&row.CompanyID,
			&row.TotalLoads,
			&row.InboundLoads,
			&row.OutboundLoads,
			&row.LatestActivityAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan load aggregate row", err)
		}
		aggregates = append(aggregates, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating load aggregate rows", err)
	}
	return aggregates, nil
}

// GetInventoryAggregates returns per-company inventory counts in one grouped query.
func (r *PgxSummaryRepository) GetInventoryAggregates(ctx context.Context) ([]domain.InventoryAggregateRow, error) {
	query := `
		SELECT
			company_id,
			COUNT(*) AS total_inventory,
			SUM(CASE WHEN status = 'IN_STORAGE' THEN 1 ELSE 0 END) AS in_storage_items
		FROM inventory_items
		GROUP BY company_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query inventory aggregates", err)
	}
	defer rows.Close()

	aggregates := []domain.InventoryAggregateRow{}
	for rows.Next() {
		var row domain.InventoryAggregateRow
		if err := rows.Scan(&row.CompanyID, &row.TotalInventory, &row.InStorageItems); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan inventory aggregate row", err)
		}
		aggregates = append(aggregates, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating inventory aggregate rows", err)
	}
	return aggregates, nil
}

// FindRequestsByCompanyID returns every request for one company, newest first.
func (r *PgxSummaryRepository) FindRequestsByCompanyID(ctx context.Context, companyID string) ([]domain.StorageRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM storage_requests
		WHERE company_id = $1
		ORDER BY created_at DESC, request_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query requests for company "+companyID, err)
	}
	defer rows.Close()

	requests := []domain.StorageRequest{}
	for rows.Next() {
		m, err := scanStorageRequest(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan request row", err)
		}
		requests = append(requests, mapping.ToDomainStorageRequest(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating request rows", err)
	}
	return requests, nil
}

// FindLoadsByRequestIDs returns loads grouped by request id, one query for the
// whole batch.
func (r *PgxSummaryRepository) FindLoadsByRequestIDs(ctx context.Context, requestIDs []string) (map[string][]domain.TruckingLoad, error) {
	grouped := make(map[string][]domain.TruckingLoad, len(requestIDs))
	for _, id := range requestIDs {
		grouped[id] = []domain.TruckingLoad{}
	}
	if len(requestIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT load_id, request_id, direction, carrier, scheduled_date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM trucking_loads
		WHERE request_id = ANY($1)
		ORDER BY created_at DESC, load_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, requestIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query loads by request IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.TruckingLoad
		if err := rows.Scan(
			&m.LoadID,
			&m.RequestID,
			&m.Direction,
			&m.Carrier,
			&m.ScheduledDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan load row", err)
		}
		grouped[m.RequestID] = append(grouped[m.RequestID], mapping.ToDomainTruckingLoad(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating load rows", err)
	}
	return grouped, nil
}

// FindDocumentsByLoadIDs returns documents grouped by load id, one query for
// the whole batch.
func (r *PgxSummaryRepository) FindDocumentsByLoadIDs(ctx context.Context, loadIDs []string) (map[string][]domain.LoadDocument, error) {
	grouped := make(map[string][]domain.LoadDocument, len(loadIDs))
	for _, id := range loadIDs {
		grouped[id] = []domain.LoadDocument{}
	}
	if len(loadIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT document_id, load_id, kind, file_name, file_url,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM load_documents
		WHERE load_id = ANY($1)
		ORDER BY created_at, document_id;
	`
	rows, err := r.Pool.Query(ctx, query, loadIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query documents by load IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.LoadDocument
		if err := rows.Scan(
			&m.DocumentID,
			&m.LoadID,
			&m.Kind,
			&m.FileName,
			&m.FileURL,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan document row", err)
		}
		grouped[m.LoadID] = append(grouped[m.LoadID], mapping.ToDomainLoadDocument(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating document rows", err)
	}
	return grouped, nil
}

// FindInventoryByCompanyID returns the company's inventory items.
func (r *PgxSummaryRepository) FindInventoryByCompanyID(ctx context.Context, companyID string) ([]domain.InventoryItem, error) {
	query := `
		SELECT item_id, company_id, request_id, description, joints, status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM inventory_items
		WHERE company_id = $1
		ORDER BY created_at DESC, item_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query inventory for company "+companyID, err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		var m models.InventoryItem
		if err := rows.Scan(
			&m.ItemID,
			&m.CompanyID,
			&m.RequestID,
			&m.Description,
			&m.Joints,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan inventory row", err)
		}
		items = append(items, mapping.ToDomainInventoryItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating inventory rows", err)
	}
	return items, nil
}
