package dto

import (
	"time"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to add an employee.
type CreateEmployeeRequest struct {
	Name       string          `json:"name" binding:"required"`
	Role       string          `json:"role"`
	BaseSalary decimal.Decimal `json:"baseSalary" binding:"required,gt=0"`
	Allowances decimal.Decimal `json:"allowances" binding:"omitempty,gte=0"`
	Deductions decimal.Decimal `json:"deductions" binding:"omitempty,gte=0"`
	HiredOn    string          `json:"hiredOn" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
type UpdateEmployeeRequest struct {
	Name       *string          `json:"name"`
	Role       *string          `json:"role"`
	BaseSalary *decimal.Decimal `json:"baseSalary" binding:"omitempty,gt=0"`
	Allowances *decimal.Decimal `json:"allowances" binding:"omitempty,gte=0"`
	Deductions *decimal.Decimal `json:"deductions" binding:"omitempty,gte=0"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID    string          `json:"employeeID"`
	Name          string          `json:"name"`
	Role          string          `json:"role"`
	BaseSalary    decimal.Decimal `json:"baseSalary"`
	Allowances    decimal.Decimal `json:"allowances"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetSalary     decimal.Decimal `json:"netSalary"`
	HiredOn       string          `json:"hiredOn"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		Name:          e.Name,
		Role:          e.Role,
		BaseSalary:    e.BaseSalary,
		Allowances:    e.Allowances,
		Deductions:    e.Deductions,
		NetSalary:     e.NetSalary(),
		HiredOn:       e.HiredOn,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee to response DTOs
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = ToEmployeeResponse(&e)
	}
	return res
}
