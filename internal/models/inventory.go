package models

import "github.com/shopspring/decimal"

// InventoryStatus indicates whether an inventory item is still in the yard.
type InventoryStatus string

const (
	ItemInStorage InventoryStatus = "IN_STORAGE"
	ItemPickedUp  InventoryStatus = "PICKED_UP"
)

// InventoryItem mirrors the inventory_items table.
type InventoryItem struct {
	ItemID      string          `json:"itemID"`
	CompanyID   string          `json:"companyID"`
	RequestID   string          `json:"requestID"`
	Description string          `json:"description"`
	Joints      decimal.Decimal `json:"joints"`
	Status      InventoryStatus `json:"status"`
	AuditFields
}
