package services_test

import (
	"context"
	"testing"

	"github.com/fleetserve/fleet_management_app/internal/apperrors"
	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type QuotationServiceTestSuite struct {
	suite.Suite
	mockQuotationRepo *MockQuotationRepository
	mockCustomerRepo  *MockCustomerRepository
	mockInvoiceRepo   *MockInvoiceRepository
	service           portssvc.QuotationSvcFacade
	ctx               context.Context
}

func (s *QuotationServiceTestSuite) SetupTest() {
	s.mockQuotationRepo = new(MockQuotationRepository)
	s.mockCustomerRepo = new(MockCustomerRepository)
	s.mockInvoiceRepo = new(MockInvoiceRepository)
	s.service = services.NewQuotationService(s.mockQuotationRepo, s.mockCustomerRepo, s.mockInvoiceRepo)
	s.ctx = context.Background()
}

func TestQuotationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuotationServiceTestSuite))
}

func (s *QuotationServiceTestSuite) TestConvertToInvoice_Accepted() {
	quotation := &domain.Quotation{
		QuotationID: "quo-1",
		CustomerID:  "cust-1",
		Amount:      dec(2500),
		Status:      domain.QuotationAccepted,
	}
	s.mockQuotationRepo.On("FindQuotationByID", s.ctx, "quo-1").Return(quotation, nil)
	s.mockInvoiceRepo.On("SaveInvoice", s.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil)

	invoice, err := s.service.ConvertToInvoice(s.ctx, "quo-1", "INV-2025-001")

	require.NoError(s.T(), err)
	require.NotNil(s.T(), invoice)
	assert.Equal(s.T(), "cust-1", invoice.CustomerID)
	assert.Equal(s.T(), "INV-2025-001", invoice.InvoiceNumber)
	assert.True(s.T(), invoice.Amount.Equal(dec(2500)))
	assert.Equal(s.T(), domain.InvoiceDraft, invoice.Status)
	s.mockInvoiceRepo.AssertExpectations(s.T())
}

func (s *QuotationServiceTestSuite) TestConvertToInvoice_NotAccepted() {
	quotation := &domain.Quotation{
		QuotationID: "quo-1",
		CustomerID:  "cust-1",
		Amount:      dec(2500),
		Status:      domain.QuotationSent,
	}
	s.mockQuotationRepo.On("FindQuotationByID", s.ctx, "quo-1").Return(quotation, nil)

	invoice, err := s.service.ConvertToInvoice(s.ctx, "quo-1", "INV-2025-001")

	assert.Nil(s.T(), invoice)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.mockInvoiceRepo.AssertNotCalled(s.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (s *QuotationServiceTestSuite) TestConvertToInvoice_UnknownQuotation() {
	s.mockQuotationRepo.On("FindQuotationByID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	invoice, err := s.service.ConvertToInvoice(s.ctx, "ghost", "INV-2025-001")

	assert.Nil(s.T(), invoice)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}
