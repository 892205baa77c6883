package domain

import (
	"github.com/shopspring/decimal"
)

// Rack represents a storage area in the yard with a fixed joint capacity.
// Invariant: 0 <= Occupied <= Capacity, under every write path.
type Rack struct {
	RackID   string          `json:"rackID"` // Primary Key (UUID)
	Label    string          `json:"label"`  // Yard label, e.g. "A-14"
	Capacity decimal.Decimal `json:"capacity"`
	Occupied decimal.Decimal `json:"occupied"`
	IsActive bool            `json:"isActive"`
	AuditFields
}

// Available returns the remaining capacity on the rack.
func (r Rack) Available() decimal.Decimal {
	return r.Capacity.Sub(r.Occupied)
}

// CanHold reports whether the rack can absorb the given additional joints.
func (r Rack) CanHold(joints decimal.Decimal) bool {
	return r.Occupied.Add(joints).LessThanOrEqual(r.Capacity)
}
