package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pipeyard/pipeyard_api/internal/apperrors"
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
	"github.com/pipeyard/pipeyard_api/internal/models"
	"github.com/pipeyard/pipeyard_api/internal/utils/mapping"
	"github.com/pipeyard/pipeyard_api/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const requestColumns = `request_id, company_id, reference_code, status, required_joints, admin_notes, rejection_reason, approved_by, decided_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxRequestRepository struct {
	BaseRepository
	rackRepo         portsrepo.RackRepositoryFacade
	auditLogRepo     portsrepo.AuditLogRepositoryFacade
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// newPgxRequestRepository creates a new repository for storage request data.
// The rack, audit log and notification repositories are injected so the
// approval transaction can compose their in-tx operations.
func newPgxRequestRepository(
	pool *pgxpool.Pool,
	rackRepo portsrepo.RackRepositoryFacade,
	auditLogRepo portsrepo.AuditLogRepositoryFacade,
	notificationRepo portsrepo.NotificationRepositoryFacade,
) portsrepo.RequestRepositoryFacade {
	return &PgxRequestRepository{
		BaseRepository:   BaseRepository{Pool: pool},
		rackRepo:         rackRepo,
		auditLogRepo:     auditLogRepo,
		notificationRepo: notificationRepo,
	}
}

// Ensure PgxRequestRepository implements portsrepo.RequestRepositoryFacade
var _ portsrepo.RequestRepositoryFacade = (*PgxRequestRepository)(nil)

func scanStorageRequest(row pgx.Row) (models.StorageRequest, error) {
	var m models.StorageRequest
	err := row.Scan(
		&m.RequestID,
		&m.CompanyID,
		&m.ReferenceCode,
		&m.Status,
		&m.RequiredJoints,
		&m.AdminNotes,
		&m.RejectionReason,
		&m.ApprovedBy,
		&m.DecidedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveStorageRequest inserts a new storage request.
func (r *PgxRequestRepository) SaveStorageRequest(ctx context.Context, request domain.StorageRequest) error {
	m := mapping.ToModelStorageRequest(request)
	query := `
		INSERT INTO storage_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RequestID, m.CompanyID, m.ReferenceCode, m.Status, m.RequiredJoints,
		m.AdminNotes, m.RejectionReason, m.ApprovedBy, m.DecidedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: request with ID %s already exists", apperrors.ErrDuplicate, m.RequestID)
		}
		return apperrors.NewAppError(500, "failed to save storage request "+m.RequestID, err)
	}
	return nil
}

// FindRequestByID retrieves a storage request by its ID.
func (r *PgxRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.StorageRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM storage_requests WHERE request_id = $1;`
	m, err := scanStorageRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find request by ID "+requestID, err)
	}
	d := mapping.ToDomainStorageRequest(m)
	return &d, nil
}

// ListRequestsByCompany returns a page of requests for a company, newest
// first, using keyset pagination on (created_at, request_id).
func (r *PgxRequestRepository) ListRequestsByCompany(ctx context.Context, companyID string, status *domain.RequestStatus, limit int, nextToken *string) ([]domain.StorageRequest, *string, error) {
	args := []interface{}{companyID}
	query := `SELECT ` + requestColumns + ` FROM storage_requests WHERE company_id = $1`
	argPos := 2

	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, string(*status))
		argPos++
	}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (created_at, request_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, lastCreatedAt, lastID)
		argPos += 2
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(" ORDER BY created_at DESC, request_id DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query requests for company "+companyID, err)
	}
	defer rows.Close()

	modelRequests := []models.StorageRequest{}
	for rows.Next() {
		m, err := scanStorageRequest(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan request row", err)
		}
		modelRequests = append(modelRequests, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating request rows", err)
	}

	var newNextToken *string
	if len(modelRequests) > limit {
		modelRequests = modelRequests[:limit]
		last := modelRequests[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.RequestID)
		newNextToken = &token
	}

	return mapping.ToDomainStorageRequestSlice(modelRequests), newNextToken, nil
}

// FindAssignmentsByRequestIDs returns rack allocations grouped by request id.
// Every requested id gets an entry, empty when no assignments exist.
func (r *PgxRequestRepository) FindAssignmentsByRequestIDs(ctx context.Context, requestIDs []string) (map[string][]domain.RackAllocation, error) {
	grouped := make(map[string][]domain.RackAllocation, len(requestIDs))
	for _, id := range requestIDs {
		grouped[id] = []domain.RackAllocation{}
	}
	if len(requestIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT request_id, rack_id, joints
		FROM request_rack_assignments
		WHERE request_id = ANY($1)
		ORDER BY request_id, rack_id;
	`
	rows, err := r.Pool.Query(ctx, query, requestIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rack assignments", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.RackAssignment
		if err := rows.Scan(&m.RequestID, &m.RackID, &m.Joints); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rack assignment row", err)
		}
		grouped[m.RequestID] = append(grouped[m.RequestID], mapping.ToDomainRackAllocation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rack assignment rows", err)
	}
	return grouped, nil
}

// findRequestByIDForUpdate locks the request row inside the transaction.
func (r *PgxRequestRepository) findRequestByIDForUpdate(ctx context.Context, tx pgx.Tx, requestID string) (*domain.StorageRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM storage_requests WHERE request_id = $1 FOR UPDATE;`
	m, err := scanStorageRequest(tx.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock request "+requestID, err)
	}
	d := mapping.ToDomainStorageRequest(m)
	return &d, nil
}

// updateRequestInTx writes the decided request back within the transaction.
func (r *PgxRequestRepository) updateRequestInTx(ctx context.Context, tx pgx.Tx, request domain.StorageRequest) error {
	m := mapping.ToModelStorageRequest(request)
	query := `
		UPDATE storage_requests
		SET status = $1, admin_notes = $2, rejection_reason = $3, approved_by = $4,
		    decided_at = $5, last_updated_at = $6, last_updated_by = $7
		WHERE request_id = $8;
	`
	ct, err := tx.Exec(ctx, query,
		m.Status, m.AdminNotes, m.RejectionReason, m.ApprovedBy,
		m.DecidedAt, m.LastUpdatedAt, m.LastUpdatedBy, m.RequestID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update request "+m.RequestID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// insertAssignmentsInTx writes the rack allocation rows for an approval.
func (r *PgxRequestRepository) insertAssignmentsInTx(ctx context.Context, tx pgx.Tx, requestID string, allocations []domain.RackAllocation) error {
	query := `
		INSERT INTO request_rack_assignments (request_id, rack_id, joints)
		VALUES ($1, $2, $3);
	`
	batch := &pgx.Batch{}
	for _, alloc := range allocations {
		batch.Queue(query, requestID, alloc.RackID, alloc.Joints)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for range allocations {
		if _, err := br.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert rack assignment for request "+requestID, err)
		}
	}
	return nil
}

// ApplyApproval runs the whole approval bundle in one transaction: lock the
// request, re-check it is still pending, lock the racks, re-check capacity,
// then write the request update, assignment rows, occupancy increments, audit
// entry and notification task together. Any failure rolls everything back.
func (r *PgxRequestRepository) ApplyApproval(ctx context.Context, request domain.StorageRequest, allocations []domain.RackAllocation, auditEntry domain.AuditLogEntry, task domain.NotificationTask) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil && err == nil {
			err = rbErr
		}
	}()

	current, err := r.findRequestByIDForUpdate(ctx, tx, request.RequestID)
	if err != nil {
		return err
	}
	// Authoritative status check, under the row lock. The service's pre-check
	// can race with another admin; this one cannot.
	if !current.Status.CanApprove() {
		return fmt.Errorf("%w: request %s is %s, not %s", apperrors.ErrConflict, current.RequestID, current.Status, domain.PendingApproval)
	}

	rackIDs := make([]string, 0, len(allocations))
	deltas := make(map[string]decimal.Decimal, len(allocations))
	for _, alloc := range allocations {
		rackIDs = append(rackIDs, alloc.RackID)
		deltas[alloc.RackID] = deltas[alloc.RackID].Add(alloc.Joints)
	}

	lockedRacks, err := r.rackRepo.FindRacksByIDsForUpdate(ctx, tx, rackIDs)
	if err != nil {
		return err
	}
	for rackID, delta := range deltas {
		rack, found := lockedRacks[rackID]
		if !found {
			return fmt.Errorf("%w: rack %s", apperrors.ErrNotFound, rackID)
		}
		if !rack.CanHold(delta) {
			return apperrors.NewCapacityError(rackID, delta, rack.Available())
		}
	}

	if err = r.updateRequestInTx(ctx, tx, request); err != nil {
		return err
	}
	if err = r.insertAssignmentsInTx(ctx, tx, request.RequestID, allocations); err != nil {
		return err
	}
	if err = r.rackRepo.IncrementRackOccupancyInTx(ctx, tx, deltas, auditEntry.ActorID, request.LastUpdatedAt); err != nil {
		return err
	}
	if err = r.auditLogRepo.InsertAuditLogInTx(ctx, tx, auditEntry); err != nil {
		return err
	}
	if err = r.notificationRepo.InsertTaskInTx(ctx, tx, task); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ApplyRejection runs the rejection bundle in one transaction. Racks are not
// touched; the request moves to REJECTED with its audit entry and
// notification task.
func (r *PgxRequestRepository) ApplyRejection(ctx context.Context, request domain.StorageRequest, auditEntry domain.AuditLogEntry, task domain.NotificationTask) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil && err == nil {
			err = rbErr
		}
	}()

	current, err := r.findRequestByIDForUpdate(ctx, tx, request.RequestID)
	if err != nil {
		return err
	}
	if !current.Status.CanApprove() {
		return fmt.Errorf("%w: request %s is %s, not %s", apperrors.ErrConflict, current.RequestID, current.Status, domain.PendingApproval)
	}

	if err = r.updateRequestInTx(ctx, tx, request); err != nil {
		return err
	}
	if err = r.auditLogRepo.InsertAuditLogInTx(ctx, tx, auditEntry); err != nil {
		return err
	}
	if err = r.notificationRepo.InsertTaskInTx(ctx, tx, task); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
