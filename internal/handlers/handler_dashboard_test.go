package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fleetserve/fleet_management_app/internal/apperrors"
	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/dto"
	"github.com/fleetserve/fleet_management_app/internal/handlers"
	"github.com/fleetserve/fleet_management_app/internal/platform/config"
	"github.com/fleetserve/fleet_management_app/internal/utils/monthkey"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock AnalyticsService ---
type MockAnalyticsService struct {
	mock.Mock
}

var _ portssvc.AnalyticsService = (*MockAnalyticsService)(nil)

func (m *MockAnalyticsService) GetProfitabilityByVehicle(ctx context.Context, vehicleID string) (*domain.VehicleProfitability, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleProfitability), args.Error(1)
}

func (m *MockAnalyticsService) GetDashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardMetrics), args.Error(1)
}

func setupDashboardRouter(svc portssvc.AnalyticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	services := &portssvc.ServiceContainer{Analytics: svc}
	cfg := &config.Config{IsProduction: true, RateLimit: "300-M"}
	handlers.RegisterRoutes(r, cfg, services)
	return r
}

// The dashboard route must keep serving a structurally valid payload when
// aggregation fails; clients render zeros instead of an error page.
func TestGetDashboardMetrics_DegradesToZerosOnFailure(t *testing.T) {
	mockSvc := new(MockAnalyticsService)
	mockSvc.On("GetDashboardMetrics", mock.Anything).Return(nil, errors.New("database is locked"))
	router := setupDashboardRouter(mockSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Overall.TotalRevenue.IsZero())
	assert.Equal(t, "N/A", body.Categories.TopExpenseCategory)
	assert.Equal(t, "N/A", body.Operational.MostActiveVehicle.VehicleNumber)
	require.Len(t, body.Time.MonthlyTrend, 12)
	assert.Equal(t, monthkey.FromTime(time.Now().UTC()), body.Time.MonthlyTrend[11].Month)
	assert.NotNil(t, body.Vehicles.TopByRevenue)
	assert.NotNil(t, body.Customers.TopByRevenue)
}

func TestGetDashboardMetrics_PassesThroughOnSuccess(t *testing.T) {
	metrics := domain.EmptyDashboardMetrics("2025-01", []string{"2024-12", "2025-01"})
	metrics.Overall.TotalRevenue = decimal.NewFromInt(4200)
	mockSvc := new(MockAnalyticsService)
	mockSvc.On("GetDashboardMetrics", mock.Anything).Return(&metrics, nil)
	router := setupDashboardRouter(mockSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Overall.TotalRevenue.Equal(decimal.NewFromInt(4200)))
}

func TestGetVehicleProfitability_NotFound(t *testing.T) {
	mockSvc := new(MockAnalyticsService)
	mockSvc.On("GetProfitabilityByVehicle", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)
	router := setupDashboardRouter(mockSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/vehicles/ghost/profitability", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
