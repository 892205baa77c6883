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
)

const adminColumns = `admin_id, email, name, password_hash, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxAdminRepository struct {
	BaseRepository
}

// newPgxAdminRepository creates a new repository for admin principals.
func newPgxAdminRepository(pool *pgxpool.Pool) portsrepo.AdminRepositoryFacade {
	return &PgxAdminRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAdminRepository implements portsrepo.AdminRepositoryFacade
var _ portsrepo.AdminRepositoryFacade = (*PgxAdminRepository)(nil)

func scanAdmin(row pgx.Row) (models.Admin, error) {
	var m models.Admin
	err := row.Scan(
		&m.AdminID,
		&m.Email,
		&m.Name,
		&m.PasswordHash,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAdmin inserts a new admin.
func (r *PgxAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	query := `
		INSERT INTO admins (` + adminColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		admin.AdminID, admin.Email, admin.Name, admin.PasswordHash, admin.IsActive,
		admin.CreatedAt, admin.CreatedBy, admin.LastUpdatedAt, admin.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: admin with email %s already exists", apperrors.ErrDuplicate, admin.Email)
		}
		return apperrors.NewAppError(500, "failed to save admin "+admin.AdminID, err)
	}
	return nil
}

// FindAdminByID retrieves an admin by its ID.
func (r *PgxAdminRepository) FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE admin_id = $1;`
	m, err := scanAdmin(r.Pool.QueryRow(ctx, query, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find admin by ID "+adminID, err)
	}
	d := mapping.ToDomainAdmin(m)
	return &d, nil
}

// FindAdminByEmail retrieves an admin by email, matched case-insensitively.
func (r *PgxAdminRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE LOWER(email) = LOWER($1);`
	m, err := scanAdmin(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find admin by email", err)
	}
	d := mapping.ToDomainAdmin(m)
	return &d, nil
}
