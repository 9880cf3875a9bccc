package domain

import "github.com/shopspring/decimal"

// InvoiceStatus tracks an invoice through its lifecycle.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Invoice represents a bill issued to a customer. The aggregation engine uses
// it only as the invoiceID -> customerID mapping for revenue attribution.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	CustomerID    string          `json:"customerID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Status        InvoiceStatus   `json:"status"`
	IssueDate     string          `json:"issueDate"` // ISO YYYY-MM-DD
	DueDate       string          `json:"dueDate"`   // ISO YYYY-MM-DD
	AuditFields
}
