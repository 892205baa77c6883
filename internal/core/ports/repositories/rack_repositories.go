package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RackRepositoryFacade defines persistence operations for storage racks.
type RackRepositoryFacade interface {
	SaveRack(ctx context.Context, rack domain.Rack) error
	FindRackByID(ctx context.Context, rackID string) (*domain.Rack, error)
	FindRacksByIDs(ctx context.Context, rackIDs []string) (map[string]domain.Rack, error)
	ListRacks(ctx context.Context) ([]domain.Rack, error)

	// FindRacksByIDsForUpdate selects racks and locks the rows for update within
	// a transaction. Rows are locked in rack-id order so concurrent approvals
	// touching overlapping rack sets cannot deadlock.
	FindRacksByIDsForUpdate(ctx context.Context, tx pgx.Tx, rackIDs []string) (map[string]domain.Rack, error)

	// IncrementRackOccupancyInTx applies occupancy deltas to already-locked
	// racks within the given transaction.
	IncrementRackOccupancyInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, adminID string, now time.Time) error
}
