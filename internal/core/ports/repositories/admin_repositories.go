package repositories

import (
	"context"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
)

// AdminRepositoryFacade defines persistence operations for admin principals.
type AdminRepositoryFacade interface {
	SaveAdmin(ctx context.Context, admin domain.Admin) error
	FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error)
	FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
