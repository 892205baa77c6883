package mapping

import (
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	"github.com/pipeyard/pipeyard_api/internal/models"
)

// ToModelRack converts a domain Rack to a model Rack
func ToModelRack(d domain.Rack) models.Rack {
	return models.Rack{
		RackID:      d.RackID,
		Label:       d.Label,
		Capacity:    d.Capacity,
		Occupied:    d.Occupied,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRack converts a model Rack to a domain Rack
func ToDomainRack(m models.Rack) domain.Rack {
	return domain.Rack{
		RackID:      m.RackID,
		Label:       m.Label,
		Capacity:    m.Capacity,
		Occupied:    m.Occupied,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
