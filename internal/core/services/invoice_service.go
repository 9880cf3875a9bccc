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

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, customerRepo portsrepo.CustomerReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: repo, customerRepo: customerRepo}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListInvoices(ctx)
}

func (s *invoiceService) ListInvoicesByCustomer(ctx context.Context, customerID string) ([]domain.Invoice, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.ListInvoicesByCustomer(ctx, customerID)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now()
	status := domain.InvoiceStatus(req.Status)
	if status == "" {
		status = domain.InvoiceDraft
	}
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		CustomerID:    req.CustomerID,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		Status:        status,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_number", req.InvoiceNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("invoice_number", invoice.InvoiceNumber))
	return &invoice, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		invoice.Amount = *req.Amount
	}
	if req.Status != nil {
		invoice.Status = domain.InvoiceStatus(*req.Status)
	}
	if req.IssueDate != nil {
		invoice.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	invoice.LastUpdatedAt = time.Now()

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}

	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return err
	}
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return err
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}
