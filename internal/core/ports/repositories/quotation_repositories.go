package repositories

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
)

// QuotationReader defines read operations for quotation data
type QuotationReader interface {
	// FindQuotationByID retrieves a specific quotation by its unique identifier.
	FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error)

	// ListQuotations retrieves all quotations.
	ListQuotations(ctx context.Context) ([]domain.Quotation, error)
}

// QuotationWriter defines write operations for quotation data
type QuotationWriter interface {
	// SaveQuotation persists a new quotation.
	SaveQuotation(ctx context.Context, quotation domain.Quotation) error

	// UpdateQuotation updates an existing quotation.
	UpdateQuotation(ctx context.Context, quotation domain.Quotation) error

	// DeleteQuotation removes a quotation.
	DeleteQuotation(ctx context.Context, quotationID string) error
}

// QuotationRepositoryFacade combines all quotation-related repository interfaces
type QuotationRepositoryFacade interface {
	QuotationReader
	QuotationWriter
}
