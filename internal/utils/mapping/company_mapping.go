package mapping

import (
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	"github.com/pipeyard/pipeyard_api/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		Domain:      d.Domain,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Domain:      m.Domain,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
