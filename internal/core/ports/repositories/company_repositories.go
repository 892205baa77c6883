package repositories

import (
	"context"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
)

// CompanyRepositoryFacade defines persistence operations for companies.
type CompanyRepositoryFacade interface {
	// SaveCompany inserts a new company. Identity is immutable after creation.
	SaveCompany(ctx context.Context, company domain.Company) error
	// FindCompanyByID retrieves a company, returning apperrors.ErrNotFound when absent.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	// ListCompanies returns all companies ordered by name, ties broken by id.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}
