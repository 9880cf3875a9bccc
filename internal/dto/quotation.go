package dto

import (
	"time"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateQuotationRequest defines the data needed to create a quotation.
type CreateQuotationRequest struct {
	CustomerID      string          `json:"customerID" binding:"required"`
	QuotationNumber string          `json:"quotationNumber" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required,gt=0"`
	ValidUntil      string          `json:"validUntil" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateQuotationRequest defines the data allowed for updating a quotation.
type UpdateQuotationRequest struct {
	Amount     *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	Status     *string          `json:"status" binding:"omitempty,oneof=draft sent accepted rejected"`
	ValidUntil *string          `json:"validUntil" binding:"omitempty,datetime=2006-01-02"`
}

// ConvertQuotationRequest defines the data needed to convert a quotation to an invoice.
type ConvertQuotationRequest struct {
	InvoiceNumber string `json:"invoiceNumber" binding:"required"`
}

// QuotationResponse defines the data returned for a quotation.
type QuotationResponse struct {
	QuotationID     string          `json:"quotationID"`
	CustomerID      string          `json:"customerID"`
	QuotationNumber string          `json:"quotationNumber"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	ValidUntil      string          `json:"validUntil"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToQuotationResponse converts a domain.Quotation to QuotationResponse DTO
func ToQuotationResponse(q *domain.Quotation) QuotationResponse {
	return QuotationResponse{
		QuotationID:     q.QuotationID,
		CustomerID:      q.CustomerID,
		QuotationNumber: q.QuotationNumber,
		Amount:          q.Amount,
		Status:          string(q.Status),
		ValidUntil:      q.ValidUntil,
		CreatedAt:       q.CreatedAt,
		LastUpdatedAt:   q.LastUpdatedAt,
	}
}

// ToListQuotationResponse converts a slice of domain.Quotation to response DTOs
func ToListQuotationResponse(quotations []domain.Quotation) []QuotationResponse {
	res := make([]QuotationResponse, len(quotations))
	for i, q := range quotations {
		res[i] = ToQuotationResponse(&q)
	}
	return res
}
