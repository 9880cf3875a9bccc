package services_test

import (
	"context"
	"testing"

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

type VehicleServiceTestSuite struct {
	suite.Suite
	mockVehicleRepo *MockVehicleRepository
	service         portssvc.VehicleSvcFacade
	ctx             context.Context
}

func (s *VehicleServiceTestSuite) SetupTest() {
	s.mockVehicleRepo = new(MockVehicleRepository)
	s.service = services.NewVehicleService(s.mockVehicleRepo)
	s.ctx = context.Background()
}

func TestVehicleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleServiceTestSuite))
}

func (s *VehicleServiceTestSuite) TestCreateVehicle_DefaultsToActive() {
	s.mockVehicleRepo.On("SaveVehicle", s.ctx, mock.AnythingOfType("domain.Vehicle")).Return(nil)

	created, err := s.service.CreateVehicle(s.ctx, dto.CreateVehicleRequest{
		VehicleNumber: "KA-01-1234",
		Make:          "Tata",
		Model:         "Prima",
	})

	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.VehicleActive, created.Status)
	assert.NotEmpty(s.T(), created.VehicleID)
}

func (s *VehicleServiceTestSuite) TestCreateVehicle_DuplicateNumber() {
	s.mockVehicleRepo.On("SaveVehicle", s.ctx, mock.AnythingOfType("domain.Vehicle")).Return(apperrors.ErrDuplicate)

	created, err := s.service.CreateVehicle(s.ctx, dto.CreateVehicleRequest{
		VehicleNumber: "KA-01-1234",
	})

	assert.Nil(s.T(), created)
	assert.ErrorIs(s.T(), err, apperrors.ErrDuplicate)
}

func (s *VehicleServiceTestSuite) TestDeleteVehicle_ConflictWhileReferenced() {
	vehicle := &domain.Vehicle{VehicleID: "veh-1", VehicleNumber: "KA-01-1234"}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(vehicle, nil)
	s.mockVehicleRepo.On("DeleteVehicle", s.ctx, "veh-1").Return(apperrors.ErrConflict)

	err := s.service.DeleteVehicle(s.ctx, "veh-1")

	assert.ErrorIs(s.T(), err, apperrors.ErrConflict)
}

func (s *VehicleServiceTestSuite) TestDeleteVehicle_Unknown() {
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	err := s.service.DeleteVehicle(s.ctx, "ghost")

	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
	s.mockVehicleRepo.AssertNotCalled(s.T(), "DeleteVehicle", mock.Anything, mock.Anything)
}

func (s *VehicleServiceTestSuite) TestUpdateVehicle_PartialUpdate() {
	existing := &domain.Vehicle{VehicleID: "veh-1", VehicleNumber: "KA-01-1234", Make: "Tata", Status: domain.VehicleActive}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(existing, nil)
	s.mockVehicleRepo.On("UpdateVehicle", s.ctx, mock.AnythingOfType("domain.Vehicle")).Return(nil)

	status := "maintenance"
	updated, err := s.service.UpdateVehicle(s.ctx, "veh-1", dto.UpdateVehicleRequest{Status: &status})

	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.VehicleMaintenance, updated.Status)
	assert.Equal(s.T(), "Tata", updated.Make, "untouched fields must survive")
}
