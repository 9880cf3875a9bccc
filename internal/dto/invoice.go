package dto

import (
	"time"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to issue an invoice.
type CreateInvoiceRequest struct {
	CustomerID    string          `json:"customerID" binding:"required"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Status        string          `json:"status" binding:"omitempty,oneof=draft sent paid overdue"`
	IssueDate     string          `json:"issueDate" binding:"required,datetime=2006-01-02"`
	DueDate       string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateInvoiceRequest defines the data allowed for updating an invoice.
type UpdateInvoiceRequest struct {
	Amount    *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	Status    *string          `json:"status" binding:"omitempty,oneof=draft sent paid overdue"`
	IssueDate *string          `json:"issueDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate   *string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string          `json:"invoiceID"`
	CustomerID    string          `json:"customerID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	IssueDate     string          `json:"issueDate"`
	DueDate       string          `json:"dueDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		CustomerID:    inv.CustomerID,
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        inv.Amount,
		Status:        string(inv.Status),
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		CreatedAt:     inv.CreatedAt,
		LastUpdatedAt: inv.LastUpdatedAt,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to response DTOs
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return res
}
