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

type SQLiteInvoiceRepository struct {
	BaseRepository
}

// newSQLiteInvoiceRepository creates a new repository for invoice data.
func newSQLiteInvoiceRepository(db *sql.DB) portsrepo.InvoiceRepositoryFacade {
	return &SQLiteInvoiceRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryFacade = (*SQLiteInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, customer_id, invoice_number, amount, status, issue_date, due_date, created_at, last_updated_at`

func scanInvoice(scan func(dest ...any) error) (domain.Invoice, error) {
	var inv domain.Invoice
	var amount, status string
	err := scan(
		&inv.InvoiceID,
		&inv.CustomerID,
		&inv.InvoiceNumber,
		&amount,
		&status,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.CreatedAt,
		&inv.LastUpdatedAt,
	)
	if err != nil {
		return domain.Invoice{}, err
	}
	inv.Status = domain.InvoiceStatus(status)
	inv.Amount, err = scanDecimal(amount)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("invalid amount %q on invoice %s: %w", amount, inv.InvoiceID, err)
	}
	return inv, nil
}

// SaveInvoice persists a new invoice.
func (r *SQLiteInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.DB.ExecContext(ctx, query,
		invoice.InvoiceID,
		invoice.CustomerID,
		invoice.InvoiceNumber,
		invoice.Amount.String(),
		string(invoice.Status),
		invoice.IssueDate,
		invoice.DueDate,
		invoice.CreatedAt,
		invoice.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number %s already exists: %w", invoice.InvoiceNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice by its unique identifier.
func (r *SQLiteInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = ?;`
	row := r.DB.QueryRowContext(ctx, query, invoiceID)
	inv, err := scanInvoice(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	return &inv, nil
}

// ListInvoices retrieves all invoices ordered by invoice number.
func (r *SQLiteInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY invoice_number;`
	return r.queryInvoices(ctx, query)
}

// ListInvoicesByCustomer retrieves all invoices for one customer.
func (r *SQLiteInvoiceRepository) ListInvoicesByCustomer(ctx context.Context, customerID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE customer_id = ? ORDER BY invoice_number;`
	return r.queryInvoices(ctx, query, customerID)
}

func (r *SQLiteInvoiceRepository) queryInvoices(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice rows: %w", err)
	}
	return invoices, nil
}

// UpdateInvoice updates an existing invoice.
func (r *SQLiteInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = ?, invoice_number = ?, amount = ?, status = ?, issue_date = ?, due_date = ?, last_updated_at = ?
		WHERE invoice_id = ?;
	`
	res, err := r.DB.ExecContext(ctx, query,
		invoice.CustomerID,
		invoice.InvoiceNumber,
		invoice.Amount.String(),
		string(invoice.Status),
		invoice.IssueDate,
		invoice.DueDate,
		invoice.LastUpdatedAt,
		invoice.InvoiceID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number %s already exists: %w", invoice.InvoiceNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update invoice %s: %w", invoice.InvoiceID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for invoice %s: %w", invoice.InvoiceID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInvoice removes an invoice.
func (r *SQLiteInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM invoices WHERE invoice_id = ?;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for invoice %s: %w", invoiceID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
