package models

import "time"

// LoadDirection indicates whether a trucking load brings pipe in or takes it out.
type LoadDirection string

const (
	Inbound  LoadDirection = "INBOUND"
	Outbound LoadDirection = "OUTBOUND"
)

// TruckingLoad mirrors the trucking_loads table.
type TruckingLoad struct {
	LoadID        string        `json:"loadID"`
	RequestID     string        `json:"requestID"`
	Direction     LoadDirection `json:"direction"`
	Carrier       string        `json:"carrier"`
	ScheduledDate *time.Time    `json:"scheduledDate"`
	AuditFields
}

// LoadDocument mirrors the load_documents table.
type LoadDocument struct {
	DocumentID string `json:"documentID"`
	LoadID     string `json:"loadID"`
	Kind       string `json:"kind"`
	FileName   string `json:"fileName"`
	FileURL    string `json:"fileURL"`
	AuditFields
}
