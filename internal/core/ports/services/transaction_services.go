package services

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/fleetserve/fleet_management_app/internal/dto"
)

// TransactionReaderSvc defines read operations for vehicle transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its unique identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.VehicleTransaction, error)

	// ListTransactions retrieves every transaction on record.
	ListTransactions(ctx context.Context) ([]domain.VehicleTransaction, error)

	// ListTransactionsByVehicle retrieves all transactions for one vehicle.
	ListTransactionsByVehicle(ctx context.Context, vehicleID string) ([]domain.VehicleTransaction, error)
}

// TransactionWriterSvc defines write operations for vehicle transaction data
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a new transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.VehicleTransaction, error)

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.VehicleTransaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
