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

type SQLiteCustomerRepository struct {
	BaseRepository
}

// newSQLiteCustomerRepository creates a new repository for customer data.
func newSQLiteCustomerRepository(db *sql.DB) portsrepo.CustomerRepositoryFacade {
	return &SQLiteCustomerRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CustomerRepositoryFacade = (*SQLiteCustomerRepository)(nil)

// SaveCustomer persists a new customer.
func (r *SQLiteCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (customer_id, name, email, phone, address, created_at, last_updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.DB.ExecContext(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.CreatedAt,
		customer.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("customer %s already exists: %w", customer.CustomerID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save customer %s: %w", customer.CustomerID, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer by its unique identifier.
func (r *SQLiteCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, email, phone, address, created_at, last_updated_at
		FROM customers
		WHERE customer_id = ?;
	`
	var c domain.Customer
	err := r.DB.QueryRowContext(ctx, query, customerID).Scan(
		&c.CustomerID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	return &c, nil
}

// ListCustomers retrieves all customers ordered by name.
func (r *SQLiteCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, email, phone, address, created_at, last_updated_at
		FROM customers
		ORDER BY name;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(
			&c.CustomerID,
			&c.Name,
			&c.Email,
			&c.Phone,
			&c.Address,
			&c.CreatedAt,
			&c.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer rows: %w", err)
	}
	return customers, nil
}

// UpdateCustomer updates an existing customer's details.
func (r *SQLiteCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET name = ?, email = ?, phone = ?, address = ?, last_updated_at = ?
		WHERE customer_id = ?;
	`
	res, err := r.DB.ExecContext(ctx, query,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.LastUpdatedAt,
		customer.CustomerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.CustomerID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for customer %s: %w", customer.CustomerID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCustomer removes a customer, refusing while invoices still
// reference it.
func (r *SQLiteCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	var refs int
	countQuery := `SELECT COUNT(*) FROM invoices WHERE customer_id = ?;`
	if err := r.DB.QueryRowContext(ctx, countQuery, customerID).Scan(&refs); err != nil {
		return fmt.Errorf("failed to count invoices for customer %s: %w", customerID, err)
	}
	if refs > 0 {
		return fmt.Errorf("customer %s has %d invoices: %w", customerID, refs, apperrors.ErrConflict)
	}

	res, err := r.DB.ExecContext(ctx, `DELETE FROM customers WHERE customer_id = ?;`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for customer %s: %w", customerID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
