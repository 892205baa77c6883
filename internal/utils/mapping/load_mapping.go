package mapping

import (
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	"github.com/pipeyard/pipeyard_api/internal/models"
)

// ToDomainTruckingLoad converts a model TruckingLoad to a domain TruckingLoad
func ToDomainTruckingLoad(m models.TruckingLoad) domain.TruckingLoad {
	return domain.TruckingLoad{
		LoadID:        m.LoadID,
		RequestID:     m.RequestID,
		Direction:     domain.LoadDirection(m.Direction),
		Carrier:       m.Carrier,
		ScheduledDate: m.ScheduledDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLoadDocument converts a model LoadDocument to a domain LoadDocument
func ToDomainLoadDocument(m models.LoadDocument) domain.LoadDocument {
	return domain.LoadDocument{
		DocumentID:  m.DocumentID,
		LoadID:      m.LoadID,
		Kind:        m.Kind,
		FileName:    m.FileName,
		FileURL:     m.FileURL,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInventoryItem converts a model InventoryItem to a domain InventoryItem
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:      m.ItemID,
		CompanyID:   m.CompanyID,
		RequestID:   m.RequestID,
		Description: m.Description,
		Joints:      m.Joints,
		Status:      domain.InventoryStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
