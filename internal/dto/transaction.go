package dto

import (
	"time"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a vehicle transaction.
// The amount must be strictly positive and the date must be an ISO calendar
// date; the service additionally rejects future dates and dates older than
// twelve months.
type CreateTransactionRequest struct {
	VehicleID       string          `json:"vehicleID" binding:"required"`
	TransactionType string          `json:"transactionType" binding:"required,oneof=revenue expense"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Date            string          `json:"date" binding:"required,datetime=2006-01-02"`
	EmployeeID      string          `json:"employeeID"`
	InvoiceID       string          `json:"invoiceID"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
type UpdateTransactionRequest struct {
	Category   *string          `json:"category"`
	Amount     *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	Date       *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	EmployeeID *string          `json:"employeeID"`
	InvoiceID  *string          `json:"invoiceID"`
}

// TransactionResponse defines the data returned for a vehicle transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	VehicleID       string          `json:"vehicleID"`
	TransactionType string          `json:"transactionType"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
	Month           string          `json:"month"`
	EmployeeID      string          `json:"employeeID,omitempty"`
	InvoiceID       string          `json:"invoiceID,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.VehicleTransaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.VehicleTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		VehicleID:       t.VehicleID,
		TransactionType: string(t.Type),
		Category:        t.Category,
		Amount:          t.Amount,
		Date:            t.Date,
		Month:           t.Month,
		EmployeeID:      t.EmployeeID,
		InvoiceID:       t.InvoiceID,
		CreatedAt:       t.CreatedAt,
		LastUpdatedAt:   t.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.VehicleTransaction to response DTOs
func ToListTransactionResponse(txns []domain.VehicleTransaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}
