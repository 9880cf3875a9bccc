package domain

import "github.com/shopspring/decimal"

// Employee represents a member of staff and their payroll figures.
type Employee struct {
	EmployeeID string          `json:"employeeID"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	BaseSalary decimal.Decimal `json:"baseSalary"` // Monthly
	Allowances decimal.Decimal `json:"allowances"` // Monthly
	Deductions decimal.Decimal `json:"deductions"` // Monthly
	HiredOn    string          `json:"hiredOn"`    // ISO YYYY-MM-DD
	AuditFields
}

// NetSalary returns the monthly take-home figure.
func (e Employee) NetSalary() decimal.Decimal {
	return e.BaseSalary.Add(e.Allowances).Sub(e.Deductions)
}
