package services

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/fleetserve/fleet_management_app/internal/dto"
)

// InvoiceSvcFacade defines operations for invoice data
type InvoiceSvcFacade interface {
	// GetInvoiceByID retrieves a specific invoice by its unique identifier.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves all invoices.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// ListInvoicesByCustomer retrieves all invoices for one customer.
	ListInvoicesByCustomer(ctx context.Context, customerID string) ([]domain.Invoice, error)

	// CreateInvoice validates and persists a new invoice.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice updates an existing invoice.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}
