package models

import "github.com/shopspring/decimal"

// Rack mirrors the racks table.
type Rack struct {
	RackID   string          `json:"rackID"`
	Label    string          `json:"label"`
	Capacity decimal.Decimal `json:"capacity"`
	Occupied decimal.Decimal `json:"occupied"`
	IsActive bool            `json:"isActive"`
	AuditFields
}
