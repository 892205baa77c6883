package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pipeyard/pipeyard_api/internal/apperrors"
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portsrepo "github.com/pipeyard/pipeyard_api/internal/core/ports/repositories"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/middleware"
	"github.com/pipeyard/pipeyard_api/internal/utils"
)

// adminService manages admin principals and gates every dashboard operation.
type adminService struct {
	adminRepo portsrepo.AdminRepositoryFacade
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo portsrepo.AdminRepositoryFacade) portssvc.AdminSvcFacade {
	return &adminService{adminRepo: adminRepo}
}

// Ensure adminService implements the portssvc.AdminSvcFacade interface
var _ portssvc.AdminSvcFacade = (*adminService)(nil)

// AuthorizeAdminAction verifies adminID names an active admin. Every
// state-changing operation calls this synchronously; a deactivated admin is
// cut off immediately, not at token expiry.
func (s *adminService) AuthorizeAdminAction(ctx context.Context, adminID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	admin, err := s.adminRepo.FindAdminByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Authorization failed: unknown admin", slog.String("admin_id", adminID))
			return fmt.Errorf("%w: admin %s not found", apperrors.ErrForbidden, adminID)
		}
		return fmt.Errorf("failed to load admin %s: %w", adminID, err)
	}
	if !admin.IsActive {
		logger.Warn("Authorization failed: inactive admin", slog.String("admin_id", adminID))
		return fmt.Errorf("%w: admin %s is inactive", apperrors.ErrForbidden, adminID)
	}
	return nil
}

// GetAdminByID retrieves an admin by ID.
func (s *adminService) GetAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	return s.adminRepo.FindAdminByID(ctx, adminID)
}

// AuthenticateByPassword verifies the email/password pair against the stored
// bcrypt hash. Mismatch, unknown email and inactive admin all map to the same
// forbidden error so the response does not leak which part failed.
func (s *adminService) AuthenticateByPassword(ctx context.Context, email, password string) (*domain.Admin, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	admin, err := s.adminRepo.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to load admin by email: %w", err)
	}
	if !admin.IsActive || admin.PasswordHash == "" || !utils.CheckPasswordHash(password, admin.PasswordHash) {
		logger.Warn("Password authentication failed", slog.String("admin_id", admin.AdminID))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}
	return admin, nil
}

// AuthenticateByGoogle resolves a verified Google account email to an active
// admin. The email arrives already verified by the OAuth exchange.
func (s *adminService) AuthenticateByGoogle(ctx context.Context, email string) (*domain.Admin, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	admin, err := s.adminRepo.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Google sign-in for unknown email")
			return nil, fmt.Errorf("%w: no admin account for this Google account", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to load admin by email: %w", err)
	}
	if !admin.IsActive {
		return nil, fmt.Errorf("%w: admin %s is inactive", apperrors.ErrForbidden, admin.AdminID)
	}
	return admin, nil
}
