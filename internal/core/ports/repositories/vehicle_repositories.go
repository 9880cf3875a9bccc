package repositories

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
)

// VehicleReader defines read operations for vehicle data
type VehicleReader interface {
	// FindVehicleByID retrieves a specific vehicle by its unique identifier.
	FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)

	// ListVehicles retrieves all vehicles in the fleet.
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
}

// VehicleWriter defines write operations for vehicle data
type VehicleWriter interface {
	// SaveVehicle persists a new vehicle.
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error

	// UpdateVehicle updates an existing vehicle's details.
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error

	// DeleteVehicle removes a vehicle. Implementations return
	// apperrors.ErrConflict when transactions still reference it.
	DeleteVehicle(ctx context.Context, vehicleID string) error
}

// VehicleRepositoryFacade combines all vehicle-related repository interfaces
type VehicleRepositoryFacade interface {
	VehicleReader
	VehicleWriter
}
