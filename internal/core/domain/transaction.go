package domain

import "github.com/shopspring/decimal"

// TransactionType indicates whether a vehicle transaction is revenue or an expense.
type TransactionType string

const (
	Revenue TransactionType = "revenue"
	Expense TransactionType = "expense"
)

// Default category labels substituted when a transaction carries no category.
const (
	DefaultRevenueCategory = "Rental Income"
	DefaultExpenseCategory = "Other"
)

// VehicleTransaction is an immutable financial fact attributed to one vehicle.
//
// Date and Month are kept as stored: Date is an ISO YYYY-MM-DD string and
// Month is the denormalised bucket key, which may be in non-canonical form
// (e.g. "2025-1"). Consumers must normalise the month key before grouping.
type VehicleTransaction struct {
	TransactionID string          `json:"transactionID"`
	VehicleID     string          `json:"vehicleID"`
	Type          TransactionType `json:"transactionType"`
	Category      string          `json:"category"` // Optional; empty means "use the type default"
	Amount        decimal.Decimal `json:"amount"`   // Positive value
	Date          string          `json:"date"`
	Month         string          `json:"month"`
	EmployeeID    string          `json:"employeeID,omitempty"`
	InvoiceID     string          `json:"invoiceID,omitempty"`
	AuditFields
}

// ResolvedCategory returns the transaction's category, substituting the
// per-type default when none was recorded.
func (t VehicleTransaction) ResolvedCategory() string {
	if t.Category != "" {
		return t.Category
	}
	if t.Type == Revenue {
		return DefaultRevenueCategory
	}
	return DefaultExpenseCategory
}
