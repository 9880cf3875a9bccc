package domain

import "github.com/shopspring/decimal"

// PurchaseOrderStatus tracks a purchase order through its lifecycle.
type PurchaseOrderStatus string

const (
	PurchaseOrderOpen      PurchaseOrderStatus = "open"
	PurchaseOrderReceived  PurchaseOrderStatus = "received"
	PurchaseOrderCancelled PurchaseOrderStatus = "cancelled"
)

// PurchaseOrder represents an order placed with a supplier.
type PurchaseOrder struct {
	PurchaseOrderID string              `json:"purchaseOrderID"`
	PONumber        string              `json:"poNumber"`
	Supplier        string              `json:"supplier"`
	Amount          decimal.Decimal     `json:"amount"`
	Status          PurchaseOrderStatus `json:"status"`
	OrderDate       string              `json:"orderDate"` // ISO YYYY-MM-DD
	AuditFields
}
