package mapping

import (
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	"github.com/pipeyard/pipeyard_api/internal/models"
)

// ToModelStorageRequest converts a domain StorageRequest to a model StorageRequest
func ToModelStorageRequest(d domain.StorageRequest) models.StorageRequest {
	return models.StorageRequest{
		RequestID:       d.RequestID,
		CompanyID:       d.CompanyID,
		ReferenceCode:   d.ReferenceCode,
		Status:          models.RequestStatus(d.Status),
		RequiredJoints:  d.RequiredJoints,
		AdminNotes:      d.AdminNotes,
		RejectionReason: d.RejectionReason,
		ApprovedBy:      d.ApprovedBy,
		DecidedAt:       d.DecidedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStorageRequest converts a model StorageRequest to a domain StorageRequest
func ToDomainStorageRequest(m models.StorageRequest) domain.StorageRequest {
	return domain.StorageRequest{
		RequestID:       m.RequestID,
		CompanyID:       m.CompanyID,
		ReferenceCode:   m.ReferenceCode,
		Status:          domain.RequestStatus(m.Status),
		RequiredJoints:  m.RequiredJoints,
		AdminNotes:      m.AdminNotes,
		RejectionReason: m.RejectionReason,
		ApprovedBy:      m.ApprovedBy,
		DecidedAt:       m.DecidedAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStorageRequestSlice converts a slice of model StorageRequests to domain objects
func ToDomainStorageRequestSlice(ms []models.StorageRequest) []domain.StorageRequest {
	ds := make([]domain.StorageRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStorageRequest(m)
	}
	return ds
}

// ToDomainRackAllocation converts a model RackAssignment to a domain RackAllocation
func ToDomainRackAllocation(m models.RackAssignment) domain.RackAllocation {
	return domain.RackAllocation{
		RackID: m.RackID,
		Joints: m.Joints,
	}
}
