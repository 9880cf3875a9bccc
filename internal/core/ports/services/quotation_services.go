package services

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/fleetserve/fleet_management_app/internal/dto"
)

// QuotationSvcFacade defines operations for quotation data
type QuotationSvcFacade interface {
	// GetQuotationByID retrieves a specific quotation by its unique identifier.
	GetQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error)

	// ListQuotations retrieves all quotations.
	ListQuotations(ctx context.Context) ([]domain.Quotation, error)

	// CreateQuotation validates and persists a new quotation.
	CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest) (*domain.Quotation, error)

	// UpdateQuotation updates an existing quotation.
	UpdateQuotation(ctx context.Context, quotationID string, req dto.UpdateQuotationRequest) (*domain.Quotation, error)

	// DeleteQuotation removes a quotation.
	DeleteQuotation(ctx context.Context, quotationID string) error

	// ConvertToInvoice creates an invoice from an accepted quotation.
	ConvertToInvoice(ctx context.Context, quotationID string, invoiceNumber string) (*domain.Invoice, error)
}
