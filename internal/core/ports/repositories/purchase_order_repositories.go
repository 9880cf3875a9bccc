package repositories

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
)

// PurchaseOrderReader defines read operations for purchase order data
type PurchaseOrderReader interface {
	// FindPurchaseOrderByID retrieves a specific purchase order by its unique identifier.
	FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves all purchase orders.
	ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
}

// PurchaseOrderWriter defines write operations for purchase order data
type PurchaseOrderWriter interface {
	// SavePurchaseOrder persists a new purchase order.
	SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error

	// UpdatePurchaseOrder updates an existing purchase order.
	UpdatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error

	// DeletePurchaseOrder removes a purchase order.
	DeletePurchaseOrder(ctx context.Context, purchaseOrderID string) error
}

// PurchaseOrderRepositoryFacade combines all purchase-order-related repository interfaces
type PurchaseOrderRepositoryFacade interface {
	PurchaseOrderReader
	PurchaseOrderWriter
}
