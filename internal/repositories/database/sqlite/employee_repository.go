package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fleetserve/fleet_management_app/internal/apperrors"
	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portsrepo "github.com/fleetserve/fleet_management_app/internal/core/ports/repositories"
)

type SQLiteEmployeeRepository struct {
	BaseRepository
}

// newSQLiteEmployeeRepository creates a new repository for employee data.
func newSQLiteEmployeeRepository(db *sql.DB) portsrepo.EmployeeRepositoryFacade {
	return &SQLiteEmployeeRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EmployeeRepositoryFacade = (*SQLiteEmployeeRepository)(nil)

const employeeColumns = `employee_id, name, role, base_salary, allowances, deductions, hired_on, created_at, last_updated_at`

func scanEmployee(scan func(dest ...any) error) (domain.Employee, error) {
	var e domain.Employee
	var baseSalary, allowances, deductions string
	err := scan(
		&e.EmployeeID,
		&e.Name,
		&e.Role,
		&baseSalary,
		&allowances,
		&deductions,
		&e.HiredOn,
		&e.CreatedAt,
		&e.LastUpdatedAt,
	)
	if err != nil {
		return domain.Employee{}, err
	}
	if e.BaseSalary, err = scanDecimal(baseSalary); err != nil {
		return domain.Employee{}, fmt.Errorf("invalid base salary %q on employee %s: %w", baseSalary, e.EmployeeID, err)
	}
	if e.Allowances, err = scanDecimal(allowances); err != nil {
		return domain.Employee{}, fmt.Errorf("invalid allowances %q on employee %s: %w", allowances, e.EmployeeID, err)
	}
	if e.Deductions, err = scanDecimal(deductions); err != nil {
		return domain.Employee{}, fmt.Errorf("invalid deductions %q on employee %s: %w", deductions, e.EmployeeID, err)
	}
	return e, nil
}

// SaveEmployee persists a new employee.
func (r *SQLiteEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.DB.ExecContext(ctx, query,
		employee.EmployeeID,
		employee.Name,
		employee.Role,
		employee.BaseSalary.String(),
		employee.Allowances.String(),
		employee.Deductions.String(),
		employee.HiredOn,
		employee.CreatedAt,
		employee.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee %s already exists: %w", employee.EmployeeID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save employee %s: %w", employee.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves an employee by its unique identifier.
func (r *SQLiteEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = ?;`
	row := r.DB.QueryRowContext(ctx, query, employeeID)
	e, err := scanEmployee(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	return &e, nil
}

// ListEmployees retrieves all employees ordered by name.
func (r *SQLiteEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name;`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}
	return employees, nil
}

// UpdateEmployee updates an existing employee.
func (r *SQLiteEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees
		SET name = ?, role = ?, base_salary = ?, allowances = ?, deductions = ?, hired_on = ?, last_updated_at = ?
		WHERE employee_id = ?;
	`
	res, err := r.DB.ExecContext(ctx, query,
		employee.Name,
		employee.Role,
		employee.BaseSalary.String(),
		employee.Allowances.String(),
		employee.Deductions.String(),
		employee.HiredOn,
		employee.LastUpdatedAt,
		employee.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", employee.EmployeeID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for employee %s: %w", employee.EmployeeID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEmployee removes an employee.
func (r *SQLiteEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = ?;`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for employee %s: %w", employeeID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
