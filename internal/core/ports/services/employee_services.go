package services

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/fleetserve/fleet_management_app/internal/dto"
)

// EmployeeSvcFacade defines operations for employee and payroll data
type EmployeeSvcFacade interface {
	// GetEmployeeByID retrieves a specific employee by its unique identifier.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves all employees.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// CreateEmployee validates and persists a new employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee updates an existing employee.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeleteEmployee removes an employee.
	DeleteEmployee(ctx context.Context, employeeID string) error
}
