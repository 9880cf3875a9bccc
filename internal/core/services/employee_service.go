package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portsrepo "github.com/fleetserve/fleet_management_app/internal/core/ports/repositories"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/dto"
	"github.com/google/uuid"
)

// employeeService implements the EmployeeSvcFacade interface
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: repo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.ListEmployees(ctx)
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	now := time.Now()
	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		Name:       req.Name,
		Role:       req.Role,
		BaseSalary: req.BaseSalary,
		Allowances: req.Allowances,
		Deductions: req.Deductions,
		HiredOn:    req.HiredOn,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.BaseSalary != nil {
		employee.BaseSalary = *req.BaseSalary
	}
	if req.Allowances != nil {
		employee.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		employee.Deductions = *req.Deductions
	}
	employee.LastUpdatedAt = time.Now()

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}

	s.LogInfo(ctx, "Employee updated", slog.String("employee_id", employeeID))
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return err
	}
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return err
	}
	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}
