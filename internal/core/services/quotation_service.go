package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetserve/fleet_management_app/internal/apperrors"
	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portsrepo "github.com/fleetserve/fleet_management_app/internal/core/ports/repositories"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/dto"
	"github.com/google/uuid"
)

// quotationService implements the QuotationSvcFacade interface
type quotationService struct {
	BaseService
	quotationRepo portsrepo.QuotationRepositoryFacade
	customerRepo  portsrepo.CustomerReader
	invoiceRepo   portsrepo.InvoiceWriter
}

// NewQuotationService creates a new quotation service
func NewQuotationService(repo portsrepo.QuotationRepositoryFacade, customerRepo portsrepo.CustomerReader, invoiceRepo portsrepo.InvoiceWriter) portssvc.QuotationSvcFacade {
	return &quotationService{
		quotationRepo: repo,
		customerRepo:  customerRepo,
		invoiceRepo:   invoiceRepo,
	}
}

var _ portssvc.QuotationSvcFacade = (*quotationService)(nil)

func (s *quotationService) GetQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	return s.quotationRepo.FindQuotationByID(ctx, quotationID)
}

func (s *quotationService) ListQuotations(ctx context.Context) ([]domain.Quotation, error) {
	return s.quotationRepo.ListQuotations(ctx)
}

func (s *quotationService) CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest) (*domain.Quotation, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now()
	quotation := domain.Quotation{
		QuotationID:     uuid.NewString(),
		CustomerID:      req.CustomerID,
		QuotationNumber: req.QuotationNumber,
		Amount:          req.Amount,
		Status:          domain.QuotationDraft,
		ValidUntil:      req.ValidUntil,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.quotationRepo.SaveQuotation(ctx, quotation); err != nil {
		s.LogError(ctx, err, "Failed to save quotation", slog.String("quotation_number", req.QuotationNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Quotation created", slog.String("quotation_id", quotation.QuotationID))
	return &quotation, nil
}

func (s *quotationService) UpdateQuotation(ctx context.Context, quotationID string, req dto.UpdateQuotationRequest) (*domain.Quotation, error) {
	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		quotation.Amount = *req.Amount
	}
	if req.Status != nil {
		quotation.Status = domain.QuotationStatus(*req.Status)
	}
	if req.ValidUntil != nil {
		quotation.ValidUntil = *req.ValidUntil
	}
	quotation.LastUpdatedAt = time.Now()

	if err := s.quotationRepo.UpdateQuotation(ctx, *quotation); err != nil {
		s.LogError(ctx, err, "Failed to update quotation", slog.String("quotation_id", quotationID))
		return nil, fmt.Errorf("failed to update quotation %s: %w", quotationID, err)
	}

	s.LogInfo(ctx, "Quotation updated", slog.String("quotation_id", quotationID))
	return quotation, nil
}

func (s *quotationService) DeleteQuotation(ctx context.Context, quotationID string) error {
	if _, err := s.quotationRepo.FindQuotationByID(ctx, quotationID); err != nil {
		return err
	}
	if err := s.quotationRepo.DeleteQuotation(ctx, quotationID); err != nil {
		s.LogError(ctx, err, "Failed to delete quotation", slog.String("quotation_id", quotationID))
		return err
	}
	s.LogInfo(ctx, "Quotation deleted", slog.String("quotation_id", quotationID))
	return nil
}

// ConvertToInvoice creates a draft invoice carrying the quotation's customer
// and amount. Only accepted quotations can be converted.
func (s *quotationService) ConvertToInvoice(ctx context.Context, quotationID string, invoiceNumber string) (*domain.Invoice, error) {
	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if quotation.Status != domain.QuotationAccepted {
		return nil, fmt.Errorf("%w: only accepted quotations can be converted to an invoice", apperrors.ErrValidation)
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		CustomerID:    quotation.CustomerID,
		InvoiceNumber: invoiceNumber,
		Amount:        quotation.Amount,
		Status:        domain.InvoiceDraft,
		IssueDate:     now.Format(transactionDateLayout),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice converted from quotation",
			slog.String("quotation_id", quotationID),
			slog.String("invoice_number", invoiceNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Quotation converted to invoice",
		slog.String("quotation_id", quotationID),
		slog.String("invoice_id", invoice.InvoiceID))
	return &invoice, nil
}
