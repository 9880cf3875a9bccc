package domain

import "github.com/shopspring/decimal"

// QuotationStatus tracks a quotation through its lifecycle.
type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "draft"
	QuotationSent     QuotationStatus = "sent"
	QuotationAccepted QuotationStatus = "accepted"
	QuotationRejected QuotationStatus = "rejected"
)

// Quotation represents a price offer made to a customer. An accepted
// quotation can be converted into an invoice.
type Quotation struct {
	QuotationID     string          `json:"quotationID"`
	CustomerID      string          `json:"customerID"`
	QuotationNumber string          `json:"quotationNumber"`
	Amount          decimal.Decimal `json:"amount"`
	Status          QuotationStatus `json:"status"`
	ValidUntil      string          `json:"validUntil"` // ISO YYYY-MM-DD
	AuditFields
}
