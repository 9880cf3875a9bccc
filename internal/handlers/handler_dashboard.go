package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fleetserve/fleet_management_app/internal/apperrors"
	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/dto"
	"github.com/fleetserve/fleet_management_app/internal/middleware"
	"github.com/fleetserve/fleet_management_app/internal/utils/monthkey"
	"github.com/gin-gonic/gin"
)

// analyticsHandler handles HTTP requests for the aggregation endpoints.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsService
}

// newAnalyticsHandler creates a new analyticsHandler.
func newAnalyticsHandler(as portssvc.AnalyticsService) *analyticsHandler {
	return &analyticsHandler{
		analyticsService: as,
	}
}

// registerDashboardRoutes registers the dashboard metrics route.
func registerDashboardRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsService) {
	h := newAnalyticsHandler(analyticsService)
	rg.GET("/dashboard", h.getDashboardMetrics)
}

// getDashboardMetrics godoc
// @Summary Get dashboard metrics
// @Description Computes the global dashboard across all metric families. The
// @Description dashboard never fails: aggregation errors degrade to a fully
// @Description zero-valued response rather than an error status.
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard [get]
func (h *analyticsHandler) getDashboardMetrics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	metrics, err := h.analyticsService.GetDashboardMetrics(c.Request.Context())
	if err != nil {
		// The dashboard view must render something even when the store is
		// down, so degrade to zeros instead of surfacing a 500.
		logger.Error("Dashboard aggregation failed, serving zeroed metrics", slog.String("error", err.Error()))
		currentKey := monthkey.FromTime(time.Now().UTC())
		window, werr := monthkey.Window(currentKey, 12)
		if werr != nil {
			window = nil
		}
		empty := domain.EmptyDashboardMetrics(currentKey, window)
		c.JSON(http.StatusOK, dto.ToDashboardResponse(&empty))
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(metrics))
}

// getVehicleProfitability godoc
// @Summary Get vehicle profitability
// @Description Computes the per-vehicle profitability summary: month buckets,
// @Description all-time totals and the rolling 12-month window
// @Tags dashboard
// @Produce  json
// @Param   vehicleID path string true "Vehicle ID"
// @Success 200 {object} dto.ProfitabilityResponse
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to compute profitability"
// @Router /vehicles/{vehicleID}/profitability [get]
func (h *analyticsHandler) getVehicleProfitability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("vehicleID")

	summary, err := h.analyticsService.GetProfitabilityByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			logger.Error("Failed to compute vehicle profitability", slog.String("vehicle_id", vehicleID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute profitability"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitabilityResponse(summary))
}
