package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portsrepo "github.com/fleetserve/fleet_management_app/internal/core/ports/repositories"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/dto"
	"github.com/google/uuid"
)

// vehicleService implements the VehicleSvcFacade interface
type vehicleService struct {
	BaseService
	vehicleRepo portsrepo.VehicleRepositoryFacade
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(repo portsrepo.VehicleRepositoryFacade) portssvc.VehicleSvcFacade {
	return &vehicleService{vehicleRepo: repo}
}

var _ portssvc.VehicleSvcFacade = (*vehicleService)(nil)

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	return s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListVehicles(ctx)
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest) (*domain.Vehicle, error) {
	now := time.Now()
	status := domain.VehicleStatus(req.Status)
	if status == "" {
		status = domain.VehicleActive
	}
	vehicle := domain.Vehicle{
		VehicleID:     uuid.NewString(),
		VehicleNumber: req.VehicleNumber,
		Make:          req.Make,
		Model:         req.Model,
		Year:          req.Year,
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
		s.LogError(ctx, err, "Failed to save vehicle", slog.String("vehicle_number", req.VehicleNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Vehicle created", slog.String("vehicle_id", vehicle.VehicleID), slog.String("vehicle_number", vehicle.VehicleNumber))
	return &vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.VehicleNumber != nil {
		vehicle.VehicleNumber = *req.VehicleNumber
	}
	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Status != nil {
		vehicle.Status = domain.VehicleStatus(*req.Status)
	}
	vehicle.LastUpdatedAt = time.Now()

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		s.LogError(ctx, err, "Failed to update vehicle", slog.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("failed to update vehicle %s: %w", vehicleID, err)
	}

	s.LogInfo(ctx, "Vehicle updated", slog.String("vehicle_id", vehicleID))
	return vehicle, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID); err != nil {
		return err
	}
	if err := s.vehicleRepo.DeleteVehicle(ctx, vehicleID); err != nil {
		s.LogError(ctx, err, "Failed to delete vehicle", slog.String("vehicle_id", vehicleID))
		return err
	}
	s.LogInfo(ctx, "Vehicle deleted", slog.String("vehicle_id", vehicleID))
	return nil
}
