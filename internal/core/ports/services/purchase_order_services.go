package services

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/fleetserve/fleet_management_app/internal/dto"
)

// PurchaseOrderSvcFacade defines operations for purchase order data
type PurchaseOrderSvcFacade interface {
	// GetPurchaseOrderByID retrieves a specific purchase order by its unique identifier.
	GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves all purchase orders.
	ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error)

	// CreatePurchaseOrder validates and persists a new purchase order.
	CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*domain.PurchaseOrder, error)

	// UpdatePurchaseOrder updates an existing purchase order.
	UpdatePurchaseOrder(ctx context.Context, purchaseOrderID string, req dto.UpdatePurchaseOrderRequest) (*domain.PurchaseOrder, error)

	// DeletePurchaseOrder removes a purchase order.
	DeletePurchaseOrder(ctx context.Context, purchaseOrderID string) error
}
