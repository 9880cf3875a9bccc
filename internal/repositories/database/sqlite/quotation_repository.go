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

type SQLiteQuotationRepository struct {
	BaseRepository
}

// newSQLiteQuotationRepository creates a new repository for quotation data.
func newSQLiteQuotationRepository(db *sql.DB) portsrepo.QuotationRepositoryFacade {
	return &SQLiteQuotationRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.QuotationRepositoryFacade = (*SQLiteQuotationRepository)(nil)

const quotationColumns = `quotation_id, customer_id, quotation_number, amount, status, valid_until, created_at, last_updated_at`

func scanQuotation(scan func(dest ...any) error) (domain.Quotation, error) {
	var q domain.Quotation
	var amount, status string
	err := scan(
		&q.QuotationID,
		&q.CustomerID,
		&q.QuotationNumber,
		&amount,
		&status,
		&q.ValidUntil,
		&q.CreatedAt,
		&q.LastUpdatedAt,
	)
	if err != nil {
		return domain.Quotation{}, err
	}
	q.Status = domain.QuotationStatus(status)
	q.Amount, err = scanDecimal(amount)
	if err != nil {
		return domain.Quotation{}, fmt.Errorf("invalid amount %q on quotation %s: %w", amount, q.QuotationID, err)
	}
	return q, nil
}

// SaveQuotation persists a new quotation.
func (r *SQLiteQuotationRepository) SaveQuotation(ctx context.Context, quotation domain.Quotation) error {
	query := `
		INSERT INTO quotations (` + quotationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.DB.ExecContext(ctx, query,
		quotation.QuotationID,
		quotation.CustomerID,
		quotation.QuotationNumber,
		quotation.Amount.String(),
		string(quotation.Status),
		quotation.ValidUntil,
		quotation.CreatedAt,
		quotation.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("quotation number %s already exists: %w", quotation.QuotationNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save quotation %s: %w", quotation.QuotationID, err)
	}
	return nil
}

// FindQuotationByID retrieves a quotation by its unique identifier.
func (r *SQLiteQuotationRepository) FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE quotation_id = ?;`
	row := r.DB.QueryRowContext(ctx, query, quotationID)
	q, err := scanQuotation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quotation %s: %w", quotationID, err)
	}
	return &q, nil
}

// ListQuotations retrieves all quotations ordered by quotation number.
func (r *SQLiteQuotationRepository) ListQuotations(ctx context.Context) ([]domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations ORDER BY quotation_number;`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotations: %w", err)
	}
	defer rows.Close()

	var quotations []domain.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quotation row: %w", err)
		}
		quotations = append(quotations, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotation rows: %w", err)
	}
	return quotations, nil
}

// UpdateQuotation updates an existing quotation.
func (r *SQLiteQuotationRepository) UpdateQuotation(ctx context.Context, quotation domain.Quotation) error {
	query := `
		UPDATE quotations
		SET customer_id = ?, quotation_number = ?, amount = ?, status = ?, valid_until = ?, last_updated_at = ?
		WHERE quotation_id = ?;
	`
	res, err := r.DB.ExecContext(ctx, query,
		quotation.CustomerID,
		quotation.QuotationNumber,
		quotation.Amount.String(),
		string(quotation.Status),
		quotation.ValidUntil,
		quotation.LastUpdatedAt,
		quotation.QuotationID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("quotation number %s already exists: %w", quotation.QuotationNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update quotation %s: %w", quotation.QuotationID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for quotation %s: %w", quotation.QuotationID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteQuotation removes a quotation.
func (r *SQLiteQuotationRepository) DeleteQuotation(ctx context.Context, quotationID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM quotations WHERE quotation_id = ?;`, quotationID)
	if err != nil {
		return fmt.Errorf("failed to delete quotation %s: %w", quotationID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for quotation %s: %w", quotationID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
