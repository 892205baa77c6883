package domain

import "time"

// CompanySummary is one row of the dashboard overview: a company with its
// zero-defaulted aggregate counts. Counts are never absent; a company with no
// child rows reports zeros.
type CompanySummary struct {
	CompanyID        string     `json:"companyID"`
	Name             string     `json:"name"`
	Domain           string     `json:"domain"`
	TotalRequests    int        `json:"totalRequests"`
	PendingRequests  int        `json:"pendingRequests"`
	ApprovedRequests int        `json:"approvedRequests"`
	RejectedRequests int        `json:"rejectedRequests"`
	TotalInventory   int        `json:"totalInventory"`
	InStorageItems   int        `json:"inStorageItems"`
	TotalLoads       int        `json:"totalLoads"`
	InboundLoads     int        `json:"inboundLoads"`
	OutboundLoads    int        `json:"outboundLoads"`
	LatestActivityAt *time.Time `json:"latestActivityAt"` // nil only when no activity exists
}

// CompanyDetail is the full nested tree for one company: every request with
// its rack assignments, each request's loads with documents, and the
// company's inventory items.
type CompanyDetail struct {
	Company   Company         `json:"company"`
	Requests  []RequestDetail `json:"requests"`
	Inventory []InventoryItem `json:"inventory"`
	Summary   CompanySummary  `json:"summary"`
}

// RequestDetail nests a storage request with its loads.
type RequestDetail struct {
	StorageRequest
	Loads []TruckingLoad `json:"loads"`
}

// RequestAggregateRow is one flat grouped row from the request aggregate
/// query: counts per company, keyed by company id.
type RequestAggregateRow struct {
	CompanyID        string
	TotalRequests    int
	PendingRequests  int
	ApprovedRequests int
	RejectedRequests int
	LatestActivityAt *time.Time
}

// LoadAggregateRow is one flat grouped row from the load aggregate query.
type LoadAggregateRow struct {
	CompanyID        string
	TotalLoads       int
	InboundLoads     int
	OutboundLoads    int
	LatestActivityAt *time.Time
}

// InventoryAggregateRow is one flat grouped row from the inventory aggregate query.
type InventoryAggregateRow struct {
	CompanyID      string
	TotalInventory int
	InStorageItems int
}
