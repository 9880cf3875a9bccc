package dto

import (
	"time"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
)

// CreateVehicleRequest defines the data needed to register a new vehicle.
type CreateVehicleRequest struct {
	VehicleNumber string `json:"vehicleNumber" binding:"required"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	Year          int    `json:"year" binding:"omitempty,gte=1950"`
	Status        string `json:"status" binding:"omitempty,oneof=active maintenance retired"`
}

// UpdateVehicleRequest defines the data allowed for updating a vehicle.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateVehicleRequest struct {
	VehicleNumber *string `json:"vehicleNumber"`
	Make          *string `json:"make"`
	Model         *string `json:"model"`
	Year          *int    `json:"year"`
	Status        *string `json:"status" binding:"omitempty,oneof=active maintenance retired"`
}

// VehicleResponse defines the data returned for a vehicle.
type VehicleResponse struct {
	VehicleID     string    `json:"vehicleID"`
	VehicleNumber string    `json:"vehicleNumber"`
	Make          string    `json:"make"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToVehicleResponse converts a domain.Vehicle to VehicleResponse DTO
func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		VehicleID:     v.VehicleID,
		VehicleNumber: v.VehicleNumber,
		Make:          v.Make,
		Model:         v.Model,
		Year:          v.Year,
		Status:        string(v.Status),
		CreatedAt:     v.CreatedAt,
		LastUpdatedAt: v.LastUpdatedAt,
	}
}

// ToListVehicleResponse converts a slice of domain.Vehicle to response DTOs
func ToListVehicleResponse(vehicles []domain.Vehicle) []VehicleResponse {
	res := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		res[i] = ToVehicleResponse(&v)
	}
	return res
}
