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

type SQLiteTransactionRepository struct {
	BaseRepository
}

// newSQLiteTransactionRepository creates a new repository for vehicle transaction data.
func newSQLiteTransactionRepository(db *sql.DB) portsrepo.TransactionRepositoryFacade {
	return &SQLiteTransactionRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*SQLiteTransactionRepository)(nil)

const transactionColumns = `transaction_id, vehicle_id, transaction_type, category, amount, txn_date, month, employee_id, invoice_id, created_at, last_updated_at`

func scanTransaction(scan func(dest ...any) error) (domain.VehicleTransaction, error) {
	var txn domain.VehicleTransaction
	var txnType, amount string
	err := scan(
		&txn.TransactionID,
		&txn.VehicleID,
		&txnType,
		&txn.Category,
		&amount,
		&txn.Date,
		&txn.Month,
		&txn.EmployeeID,
		&txn.InvoiceID,
		&txn.CreatedAt,
		&txn.LastUpdatedAt,
	)
	if err != nil {
		return domain.VehicleTransaction{}, err
	}
	txn.Type = domain.TransactionType(txnType)
	txn.Amount, err = scanDecimal(amount)
	if err != nil {
		return domain.VehicleTransaction{}, fmt.Errorf("invalid amount %q on transaction %s: %w", amount, txn.TransactionID, err)
	}
	return txn, nil
}

// SaveTransaction persists a new transaction.
func (r *SQLiteTransactionRepository) SaveTransaction(ctx context.Context, txn domain.VehicleTransaction) error {
	query := `
		INSERT INTO vehicle_transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.DB.ExecContext(ctx, query,
		txn.TransactionID,
		txn.VehicleID,
		string(txn.Type),
		txn.Category,
		txn.Amount.String(),
		txn.Date,
		txn.Month,
		txn.EmployeeID,
		txn.InvoiceID,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction %s already exists: %w", txn.TransactionID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its unique identifier.
func (r *SQLiteTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.VehicleTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM vehicle_transactions WHERE transaction_id = ?;`
	row := r.DB.QueryRowContext(ctx, query, transactionID)
	txn, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

// ListTransactions retrieves every transaction on record in insertion order.
func (r *SQLiteTransactionRepository) ListTransactions(ctx context.Context) ([]domain.VehicleTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM vehicle_transactions ORDER BY rowid;`
	return r.queryTransactions(ctx, query)
}

// ListTransactionsByVehicle retrieves all transactions for one vehicle in insertion order.
func (r *SQLiteTransactionRepository) ListTransactionsByVehicle(ctx context.Context, vehicleID string) ([]domain.VehicleTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM vehicle_transactions WHERE vehicle_id = ? ORDER BY rowid;`
	return r.queryTransactions(ctx, query, vehicleID)
}

func (r *SQLiteTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.VehicleTransaction, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.VehicleTransaction
	for rows.Next() {
		txn, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return txns, nil
}

// UpdateTransaction updates an existing transaction.
func (r *SQLiteTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.VehicleTransaction) error {
	query := `
		UPDATE vehicle_transactions
		SET vehicle_id = ?, transaction_type = ?, category = ?, amount = ?, txn_date = ?, month = ?, employee_id = ?, invoice_id = ?, last_updated_at = ?
		WHERE transaction_id = ?;
	`
	res, err := r.DB.ExecContext(ctx, query,
		txn.VehicleID,
		string(txn.Type),
		txn.Category,
		txn.Amount.String(),
		txn.Date,
		txn.Month,
		txn.EmployeeID,
		txn.InvoiceID,
		txn.LastUpdatedAt,
		txn.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for transaction %s: %w", txn.TransactionID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction.
func (r *SQLiteTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM vehicle_transactions WHERE transaction_id = ?;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for transaction %s: %w", transactionID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
