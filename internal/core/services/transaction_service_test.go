package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fleetserve/fleet_management_app/internal/apperrors"
	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/core/services"
	"github.com/fleetserve/fleet_management_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockVehicleRepo *MockVehicleRepository
	service         portssvc.TransactionSvcFacade
	ctx             context.Context
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockVehicleRepo = new(MockVehicleRepository)
	s.service = services.NewTransactionService(
		s.mockTxnRepo,
		s.mockVehicleRepo,
		services.WithTransactionClock(func() time.Time {
			return time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
		}),
	)
	s.ctx = context.Background()
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	vehicle := &domain.Vehicle{VehicleID: "veh-1", VehicleNumber: "KA-01-1234"}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(vehicle, nil)
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.VehicleTransaction")).Return(nil)

	req := dto.CreateTransactionRequest{
		VehicleID:       "veh-1",
		TransactionType: "revenue",
		Amount:          dec(1000),
		Date:            "2025-01-10",
	}
	created, err := s.service.CreateTransaction(s.ctx, req)

	require.NoError(s.T(), err)
	require.NotNil(s.T(), created)
	assert.NotEmpty(s.T(), created.TransactionID)
	assert.Equal(s.T(), domain.Revenue, created.Type)
	assert.Equal(s.T(), "2025-01", created.Month, "month key is derived from the date")
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_UnknownVehicle() {
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	created, err := s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		VehicleID:       "ghost",
		TransactionType: "revenue",
		Amount:          dec(100),
		Date:            "2025-01-10",
	})

	assert.Nil(s.T(), created)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_FutureDateRejected() {
	vehicle := &domain.Vehicle{VehicleID: "veh-1"}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(vehicle, nil)

	created, err := s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		VehicleID:       "veh-1",
		TransactionType: "expense",
		Amount:          dec(100),
		Date:            "2025-02-01",
	})

	assert.Nil(s.T(), created)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_TooOldRejected() {
	vehicle := &domain.Vehicle{VehicleID: "veh-1"}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(vehicle, nil)

	created, err := s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		VehicleID:       "veh-1",
		TransactionType: "expense",
		Amount:          dec(100),
		Date:            "2023-12-31",
	})

	assert.Nil(s.T(), created)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_EdgeOfWindowAccepted() {
	vehicle := &domain.Vehicle{VehicleID: "veh-1"}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(vehicle, nil)
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.VehicleTransaction")).Return(nil)

	// Exactly twelve months back from the fixed clock.
	created, err := s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		VehicleID:       "veh-1",
		TransactionType: "revenue",
		Amount:          dec(100),
		Date:            "2024-01-16",
	})

	require.NoError(s.T(), err)
	assert.Equal(s.T(), "2024-01", created.Month)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_MalformedDateRejected() {
	vehicle := &domain.Vehicle{VehicleID: "veh-1"}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(vehicle, nil)

	created, err := s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		VehicleID:       "veh-1",
		TransactionType: "revenue",
		Amount:          dec(100),
		Date:            "15-01-2025",
	})

	assert.Nil(s.T(), created)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmountRejected() {
	vehicle := &domain.Vehicle{VehicleID: "veh-1"}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(vehicle, nil)

	created, err := s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		VehicleID:       "veh-1",
		TransactionType: "expense",
		Amount:          dec(0),
		Date:            "2025-01-10",
	})

	assert.Nil(s.T(), created)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_DateChangeRealignsMonth() {
	existing := newTxn("veh-1", domain.Revenue, "", 100, "2025-01-02", "2025-01")
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, existing.TransactionID).Return(&existing, nil)
	s.mockTxnRepo.On("UpdateTransaction", s.ctx, mock.AnythingOfType("domain.VehicleTransaction")).Return(nil)

	newDate := "2024-12-20"
	updated, err := s.service.UpdateTransaction(s.ctx, existing.TransactionID, dto.UpdateTransactionRequest{
		Date: &newDate,
	})

	require.NoError(s.T(), err)
	assert.Equal(s.T(), "2024-12", updated.Month)
}
