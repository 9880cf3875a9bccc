package domain

// Customer represents a customer the company invoices.
type Customer struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	AuditFields
}
