package dto

import (
	"time"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest defines the data needed to create a purchase order.
type CreatePurchaseOrderRequest struct {
	PONumber  string          `json:"poNumber" binding:"required"`
	Supplier  string          `json:"supplier" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required,gt=0"`
	OrderDate string          `json:"orderDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdatePurchaseOrderRequest defines the data allowed for updating a purchase order.
type UpdatePurchaseOrderRequest struct {
	Supplier  *string          `json:"supplier"`
	Amount    *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	Status    *string          `json:"status" binding:"omitempty,oneof=open received cancelled"`
	OrderDate *string          `json:"orderDate" binding:"omitempty,datetime=2006-01-02"`
}

// PurchaseOrderResponse defines the data returned for a purchase order.
type PurchaseOrderResponse struct {
	PurchaseOrderID string          `json:"purchaseOrderID"`
	PONumber        string          `json:"poNumber"`
	Supplier        string          `json:"supplier"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	OrderDate       string          `json:"orderDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToPurchaseOrderResponse converts a domain.PurchaseOrder to PurchaseOrderResponse DTO
func ToPurchaseOrderResponse(po *domain.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		PurchaseOrderID: po.PurchaseOrderID,
		PONumber:        po.PONumber,
		Supplier:        po.Supplier,
		Amount:          po.Amount,
		Status:          string(po.Status),
		OrderDate:       po.OrderDate,
		CreatedAt:       po.CreatedAt,
		LastUpdatedAt:   po.LastUpdatedAt,
	}
}

// ToListPurchaseOrderResponse converts a slice of domain.PurchaseOrder to response DTOs
func ToListPurchaseOrderResponse(orders []domain.PurchaseOrder) []PurchaseOrderResponse {
	res := make([]PurchaseOrderResponse, len(orders))
	for i, po := range orders {
		res[i] = ToPurchaseOrderResponse(&po)
	}
	return res
}
