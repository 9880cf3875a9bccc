package repositories

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
)

// TransactionReader defines read operations for vehicle transaction data.
// The aggregation engine consumes exactly this interface.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.VehicleTransaction, error)

	// ListTransactions retrieves every transaction on record, in insertion order.
	ListTransactions(ctx context.Context) ([]domain.VehicleTransaction, error)

	// ListTransactionsByVehicle retrieves all transactions for one vehicle, in insertion order.
	ListTransactionsByVehicle(ctx context.Context, vehicleID string) ([]domain.VehicleTransaction, error)
}

// TransactionWriter defines write operations for vehicle transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.VehicleTransaction) error

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.VehicleTransaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
