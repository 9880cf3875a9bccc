package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portsrepo "github.com/fleetserve/fleet_management_app/internal/core/ports/repositories"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/dto"
	"github.com/google/uuid"
)

// purchaseOrderService implements the PurchaseOrderSvcFacade interface
type purchaseOrderService struct {
	BaseService
	purchaseOrderRepo portsrepo.PurchaseOrderRepositoryFacade
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(repo portsrepo.PurchaseOrderRepositoryFacade) portssvc.PurchaseOrderSvcFacade {
	return &purchaseOrderService{purchaseOrderRepo: repo}
}

var _ portssvc.PurchaseOrderSvcFacade = (*purchaseOrderService)(nil)

func (s *purchaseOrderService) GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	return s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
}

func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	return s.purchaseOrderRepo.ListPurchaseOrders(ctx)
}

func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	now := time.Now()
	po := domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		PONumber:        req.PONumber,
		Supplier:        req.Supplier,
		Amount:          req.Amount,
		Status:          domain.PurchaseOrderOpen,
		OrderDate:       req.OrderDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if po.OrderDate == "" {
		po.OrderDate = now.Format(transactionDateLayout)
	}

	if err := s.purchaseOrderRepo.SavePurchaseOrder(ctx, po); err != nil {
		s.LogError(ctx, err, "Failed to save purchase order", slog.String("po_number", req.PONumber))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase order created", slog.String("purchase_order_id", po.PurchaseOrderID))
	return &po, nil
}

func (s *purchaseOrderService) UpdatePurchaseOrder(ctx context.Context, purchaseOrderID string, req dto.UpdatePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	po, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, err
	}

	if req.Supplier != nil {
		po.Supplier = *req.Supplier
	}
	if req.Amount != nil {
		po.Amount = *req.Amount
	}
	if req.Status != nil {
		po.Status = domain.PurchaseOrderStatus(*req.Status)
	}
	if req.OrderDate != nil {
		po.OrderDate = *req.OrderDate
	}
	po.LastUpdatedAt = time.Now()

	if err := s.purchaseOrderRepo.UpdatePurchaseOrder(ctx, *po); err != nil {
		s.LogError(ctx, err, "Failed to update purchase order", slog.String("purchase_order_id", purchaseOrderID))
		return nil, fmt.Errorf("failed to update purchase order %s: %w", purchaseOrderID, err)
	}

	s.LogInfo(ctx, "Purchase order updated", slog.String("purchase_order_id", purchaseOrderID))
	return po, nil
}

func (s *purchaseOrderService) DeletePurchaseOrder(ctx context.Context, purchaseOrderID string) error {
	if _, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID); err != nil {
		return err
	}
	if err := s.purchaseOrderRepo.DeletePurchaseOrder(ctx, purchaseOrderID); err != nil {
		s.LogError(ctx, err, "Failed to delete purchase order", slog.String("purchase_order_id", purchaseOrderID))
		return err
	}
	s.LogInfo(ctx, "Purchase order deleted", slog.String("purchase_order_id", purchaseOrderID))
	return nil
}
