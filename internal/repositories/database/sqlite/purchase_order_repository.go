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

type SQLitePurchaseOrderRepository struct {
	BaseRepository
}

// newSQLitePurchaseOrderRepository creates a new repository for purchase order data.
func newSQLitePurchaseOrderRepository(db *sql.DB) portsrepo.PurchaseOrderRepositoryFacade {
	return &SQLitePurchaseOrderRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PurchaseOrderRepositoryFacade = (*SQLitePurchaseOrderRepository)(nil)

const purchaseOrderColumns = `purchase_order_id, po_number, supplier, amount, status, order_date, created_at, last_updated_at`

func scanPurchaseOrder(scan func(dest ...any) error) (domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	var amount, status string
	err := scan(
		&po.PurchaseOrderID,
		&po.PONumber,
		&po.Supplier,
		&amount,
		&status,
		&po.OrderDate,
		&po.CreatedAt,
		&po.LastUpdatedAt,
	)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	po.Status = domain.PurchaseOrderStatus(status)
	po.Amount, err = scanDecimal(amount)
	if err != nil {
		return domain.PurchaseOrder{}, fmt.Errorf("invalid amount %q on purchase order %s: %w", amount, po.PurchaseOrderID, err)
	}
	return po, nil
}

// SavePurchaseOrder persists a new purchase order.
func (r *SQLitePurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.DB.ExecContext(ctx, query,
		po.PurchaseOrderID,
		po.PONumber,
		po.Supplier,
		po.Amount.String(),
		string(po.Status),
		po.OrderDate,
		po.CreatedAt,
		po.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("purchase order number %s already exists: %w", po.PONumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save purchase order %s: %w", po.PurchaseOrderID, err)
	}
	return nil
}

// FindPurchaseOrderByID retrieves a purchase order by its unique identifier.
func (r *SQLitePurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE purchase_order_id = ?;`
	row := r.DB.QueryRowContext(ctx, query, purchaseOrderID)
	po, err := scanPurchaseOrder(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase order %s: %w", purchaseOrderID, err)
	}
	return &po, nil
}

// ListPurchaseOrders retrieves all purchase orders ordered by PO number.
func (r *SQLitePurchaseOrderRepository) ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders ORDER BY po_number;`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order row: %w", err)
		}
		orders = append(orders, po)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchase order rows: %w", err)
	}
	return orders, nil
}

// UpdatePurchaseOrder updates an existing purchase order.
func (r *SQLitePurchaseOrderRepository) UpdatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET po_number = ?, supplier = ?, amount = ?, status = ?, order_date = ?, last_updated_at = ?
		WHERE purchase_order_id = ?;
	`
	res, err := r.DB.ExecContext(ctx, query,
		po.PONumber,
		po.Supplier,
		po.Amount.String(),
		string(po.Status),
		po.OrderDate,
		po.LastUpdatedAt,
		po.PurchaseOrderID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("purchase order number %s already exists: %w", po.PONumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update purchase order %s: %w", po.PurchaseOrderID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for purchase order %s: %w", po.PurchaseOrderID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePurchaseOrder removes a purchase order.
func (r *SQLitePurchaseOrderRepository) DeletePurchaseOrder(ctx context.Context, purchaseOrderID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM purchase_orders WHERE purchase_order_id = ?;`, purchaseOrderID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase order %s: %w", purchaseOrderID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for purchase order %s: %w", purchaseOrderID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
