package services

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
)

// AnalyticsService defines the vehicle-finance aggregation queries.
//
// Both operations are pure read-time projections: they scan the transaction
// set handed to them by the repositories on every call, never mutate state
// and never cache between requests. Store read failures propagate unchanged;
// empty inputs produce fully-populated zero-valued results, never errors.
type AnalyticsService interface {
	// GetProfitabilityByVehicle computes the per-vehicle profitability summary:
	// month buckets, all-time totals and a rolling 12-month window ending at
	// the current month. Returns apperrors.ErrNotFound for an unknown vehicle.
	GetProfitabilityByVehicle(ctx context.Context, vehicleID string) (*domain.VehicleProfitability, error)

	// GetDashboardMetrics computes the global dashboard across all six metric
	// families (overall, time, vehicle, customer, category, operational).
	GetDashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error)
}
