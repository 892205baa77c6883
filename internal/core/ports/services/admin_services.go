package services

import (
	"context"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
)

// AdminAuthorizerSvc is the narrow authorization dependency injected into
// every service that performs or gates dashboard operations.
type AdminAuthorizerSvc interface {
	// AuthorizeAdminAction returns apperrors.ErrForbidden unless adminID names
	// an active admin principal.
	AuthorizeAdminAction(ctx context.Context, adminID string) error
}

// AdminSvcFacade manages admin principals and their authentication.
type AdminSvcFacade interface {
	AdminAuthorizerSvc
	GetAdminByID(ctx context.Context, adminID string) (*domain.Admin, error)
	// AuthenticateByPassword verifies the email/password pair against the
	// stored bcrypt hash, returning apperrors.ErrForbidden on mismatch or
	// inactive admin.
	AuthenticateByPassword(ctx context.Context, email, password string) (*domain.Admin, error)
	// AuthenticateByGoogle resolves a verified Google account email to an
	// active admin, returning apperrors.ErrForbidden for unknown emails.
	AuthenticateByGoogle(ctx context.Context, email string) (*domain.Admin, error)
}
