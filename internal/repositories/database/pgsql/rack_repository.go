package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pipeyard/pipeyard_api/internal/apperrors"
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
	"github.com/pipeyard/pipeyard_api/internal/models"
	"github.com/pipeyard/pipeyard_api/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const rackColumns = `rack_id, label, capacity, occupied, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxRackRepository struct {
	BaseRepository
}

// newPgxRackRepository creates a new repository for rack data.
func newPgxRackRepository(pool *pgxpool.Pool) portsrepo.RackRepositoryFacade {
	return &PgxRackRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxRackRepository implements portsrepo.RackRepositoryFacade
var _ portsrepo.RackRepositoryFacade = (*PgxRackRepository)(nil)

func scanRack(row pgx.Row) (models.Rack, error) {
	var m models.Rack
	err := row.Scan(
		&m.RackID,
		&m.Label,
		&m.Capacity,
		&m.Occupied,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRack inserts a new rack.
func (r *PgxRackRepository) SaveRack(ctx context.Context, rack domain.Rack) error {
	m := mapping.ToModelRack(rack)
	query := `
		INSERT INTO racks (` + rackColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RackID, m.Label, m.Capacity, m.Occupied, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: rack with ID %s already exists", apperrors.ErrDuplicate, m.RackID)
		}
		return apperrors.NewAppError(500, "failed to save rack "+m.RackID, err)
	}
	return nil
}

// FindRackByID retrieves a rack by its ID.
func (r *PgxRackRepository) FindRackByID(ctx context.Context, rackID string) (*domain.Rack, error) {
	query := `SELECT ` + rackColumns + ` FROM racks WHERE rack_id = $1;`
	m, err := scanRack(r.Pool.QueryRow(ctx, query, rackID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find rack by ID "+rackID, err)
	}
	d := mapping.ToDomainRack(m)
	return &d, nil
}

// FindRacksByIDs retrieves multiple racks in one query, keyed by rack id.
func (r *PgxRackRepository) FindRacksByIDs(ctx context.Context, rackIDs []string) (map[string]domain.Rack, error) {
	if len(rackIDs) == 0 {
		return map[string]domain.Rack{}, nil
	}
	query := `SELECT ` + rackColumns + ` FROM racks WHERE rack_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, rackIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query racks by IDs", err)
	}
	defer rows.Close()

	racks := make(map[string]domain.Rack, len(rackIDs))
	for rows.Next() {
		m, err := scanRack(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rack row", err)
		}
		racks[m.RackID] = mapping.ToDomainRack(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rack rows", err)
	}
	return racks, nil
}

// ListRacks retrieves all racks ordered by label then id.
func (r *PgxRackRepository) ListRacks(ctx context.Context) ([]domain.Rack, error) {
	query := `SELECT ` + rackColumns + ` FROM racks ORDER BY label, rack_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query racks", err)
	}
	defer rows.Close()

	racks := []domain.Rack{}
	for rows.Next() {
		m, err := scanRack(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rack row", err)
		}
		racks = append(racks, mapping.ToDomainRack(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rack rows", err)
	}
	return racks, nil
}

// FindRacksByIDsForUpdate selects racks and locks the rows within the given
// transaction. ORDER BY rack_id makes every caller acquire the locks in the
// same order, which rules out lock-order deadlocks between concurrent
// approvals.
func (r *PgxRackRepository) FindRacksByIDsForUpdate(ctx context.Context, tx pgx.Tx, rackIDs []string) (map[string]domain.Rack, error) {
	if len(rackIDs) == 0 {
		return map[string]domain.Rack{}, nil
	}
	query := `
		SELECT ` + rackColumns + `
		FROM racks
		WHERE rack_id = ANY($1)
		ORDER BY rack_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, rackIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query racks for update", err)
	}
	defer rows.Close()

	racks := make(map[string]domain.Rack, len(rackIDs))
	for rows.Next() {
		m, err := scanRack(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked rack row", err)
		}
		racks[m.RackID] = mapping.ToDomainRack(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating locked rack rows", err)
	}
	return racks, nil
}

// IncrementRackOccupancyInTx applies occupancy deltas to already-locked racks
// using a batch. The WHERE clause re-asserts the capacity invariant so an
// over-allocation can never slip through even if the caller's check raced.
func (r *PgxRackRepository) IncrementRackOccupancyInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, adminID string, now time.Time) error {
	if len(deltas) == 0 {
		return nil
	}

	// Deterministic batch order, same as the lock order.
	rackIDs := make([]string, 0, len(deltas))
	for rackID := range deltas {
		rackIDs = append(rackIDs, rackID)
	}
	sort.Strings(rackIDs)

	query := `
		UPDATE racks
		SET occupied = occupied + $1, last_updated_at = $2, last_updated_by = $3
		WHERE rack_id = $4
		  AND occupied + $1 >= 0
		  AND occupied + $1 <= capacity;
	`
	batch := &pgx.Batch{}
	for _, rackID := range rackIDs {
		batch.Queue(query, deltas[rackID], now, adminID, rackID)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for _, rackID := range rackIDs {
		ct, err := br.Exec()
		if err != nil {
			return apperrors.NewAppError(500, "failed to update occupancy for rack "+rackID, err)
		}
		if ct.RowsAffected() == 0 {
			return fmt.Errorf("%w: occupancy update rejected for rack %s", apperrors.ErrCapacity, rackID)
		}
	}
	return nil
}
