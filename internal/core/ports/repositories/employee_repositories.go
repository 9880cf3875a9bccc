package repositories

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by its unique identifier.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves all employees.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates an existing employee.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeleteEmployee removes an employee.
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
