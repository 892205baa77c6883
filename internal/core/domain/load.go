package domain

import "time"

// LoadDirection indicates whether a trucking load brings pipe in or takes it out.
type LoadDirection string

const (
	Inbound  LoadDirection = "INBOUND"
	Outbound LoadDirection = "OUTBOUND"
)

// TruckingLoad represents one truck movement tied to a storage request.
// Read-only from the approval core's perspective.
type TruckingLoad struct {
	LoadID        string         `json:"loadID"`    // Primary Key (UUID)
	RequestID     string         `json:"requestID"` // FK -> storage_requests.request_id
	Direction     LoadDirection  `json:"direction"`
	Carrier       string         `json:"carrier"`
	ScheduledDate *time.Time     `json:"scheduledDate"`
	Documents     []LoadDocument `json:"documents"` // Populated on detail reads
	AuditFields
}

// LoadDocument is a file attached to a trucking load (BOL, tally sheet, photo).
type LoadDocument struct {
	DocumentID string `json:"documentID"` // Primary Key (UUID)
	LoadID     string `json:"loadID"`     // FK -> trucking_loads.load_id
	Kind       string `json:"kind"`       // e.g. BOL, TALLY, PHOTO
	FileName   string `json:"fileName"`
	FileURL    string `json:"fileURL"`
	AuditFields
}
