package services

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/fleetserve/fleet_management_app/internal/dto"
)

// VehicleReaderSvc defines read operations for vehicle data
type VehicleReaderSvc interface {
	// GetVehicleByID retrieves a specific vehicle by its unique identifier.
	GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)

	// ListVehicles retrieves all vehicles in the fleet.
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
}

// VehicleWriterSvc defines write operations for vehicle data
type VehicleWriterSvc interface {
	// CreateVehicle persists a new vehicle.
	CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest) (*domain.Vehicle, error)

	// UpdateVehicle updates an existing vehicle's details.
	UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest) (*domain.Vehicle, error)

	// DeleteVehicle removes a vehicle; fails with apperrors.ErrConflict when
	// transactions still reference it.
	DeleteVehicle(ctx context.Context, vehicleID string) error
}

// VehicleSvcFacade combines all vehicle-related service interfaces
type VehicleSvcFacade interface {
	VehicleReaderSvc
	VehicleWriterSvc
}
