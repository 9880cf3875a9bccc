package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetserve/fleet_management_app/internal/apperrors"
	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portsrepo "github.com/fleetserve/fleet_management_app/internal/core/ports/repositories"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/dto"
	"github.com/google/uuid"
)

const transactionDateLayout = "2006-01-02"

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	vehicleRepo     portsrepo.VehicleReader
	now             func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the clock used for date-window validation.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, vehicleRepo portsrepo.VehicleReader, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: repo,
		vehicleRepo:     vehicleRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.VehicleTransaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.VehicleTransaction, error) {
	return s.transactionRepo.ListTransactions(ctx)
}

func (s *transactionService) ListTransactionsByVehicle(ctx context.Context, vehicleID string) ([]domain.VehicleTransaction, error) {
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID); err != nil {
		return nil, err
	}
	return s.transactionRepo.ListTransactionsByVehicle(ctx, vehicleID)
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.VehicleTransaction, error) {
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, req.VehicleID); err != nil {
		return nil, err
	}
	if err := s.validateDate(req.Date); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.VehicleTransaction{
		TransactionID: uuid.NewString(),
		VehicleID:     req.VehicleID,
		Type:          domain.TransactionType(req.TransactionType),
		Category:      req.Category,
		Amount:        req.Amount,
		Date:          req.Date,
		Month:         req.Date[:7],
		EmployeeID:    req.EmployeeID,
		InvoiceID:     req.InvoiceID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("vehicle_id", req.VehicleID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("vehicle_id", txn.VehicleID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.VehicleTransaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		if err := s.validateDate(*req.Date); err != nil {
			return nil, err
		}
		txn.Date = *req.Date
		txn.Month = (*req.Date)[:7]
	}
	if req.EmployeeID != nil {
		txn.EmployeeID = *req.EmployeeID
	}
	if req.InvoiceID != nil {
		txn.InvoiceID = *req.InvoiceID
	}
	txn.LastUpdatedAt = time.Now()

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if _, err := s.transactionRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return err
	}
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// validateDate enforces the write-time window: a parseable calendar date, not
// in the future and no older than twelve months. Historical data already in
// storage is not re-validated; the aggregation engine tolerates anything.
func (s *transactionService) validateDate(date string) error {
	parsed, err := time.Parse(transactionDateLayout, date)
	if err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}
	now := s.now()
	if parsed.After(now) {
		return fmt.Errorf("%w: date must not be in the future", apperrors.ErrValidation)
	}
	if parsed.Before(now.AddDate(0, -12, 0)) {
		return fmt.Errorf("%w: date must fall within the most recent 12 months", apperrors.ErrValidation)
	}
	return nil
}
