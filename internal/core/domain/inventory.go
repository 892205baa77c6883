package domain

import "github.com/shopspring/decimal"

// InventoryStatus indicates whether an inventory item is still in the yard.
type InventoryStatus string

const (
	ItemInStorage InventoryStatus = "IN_STORAGE"
	ItemPickedUp  InventoryStatus = "PICKED_UP"
)

// InventoryItem is a batch of pipe held for a company, linked through the
// originating storage request. Read-only from the approval core's perspective.
type InventoryItem struct {
	ItemID      string          `json:"itemID"`    // Primary Key (UUID)
	CompanyID   string          `json:"companyID"` // FK -> companies.company_id
	RequestID   string          `json:"requestID"` // FK -> storage_requests.request_id
	Description string          `json:"description"`
	Joints      decimal.Decimal `json:"joints"`
	Status      InventoryStatus `json:"status"`
	AuditFields
}
