package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fleetserve/fleet_management_app/internal/apperrors"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/dto"
	"github.com/fleetserve/fleet_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// vehicleHandler handles HTTP requests related to vehicles.
type vehicleHandler struct {
	vehicleService portssvc.VehicleSvcFacade
}

// newVehicleHandler creates a new vehicleHandler.
func newVehicleHandler(vs portssvc.VehicleSvcFacade) *vehicleHandler {
	return &vehicleHandler{
		vehicleService: vs,
	}
}

// registerVehicleRoutes registers routes related to vehicles.
func registerVehicleRoutes(rg *gin.RouterGroup, vehicleService portssvc.VehicleSvcFacade, analyticsService portssvc.AnalyticsService, transactionService portssvc.TransactionSvcFacade) {
	h := newVehicleHandler(vehicleService)
	ah := newAnalyticsHandler(analyticsService)
	th := newTransactionHandler(transactionService)

	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.createVehicle)
		vehicles.GET("", h.listVehicles)
		vehicles.GET("/:vehicleID", h.getVehicleByID)
		vehicles.PUT("/:vehicleID", h.updateVehicle)
		vehicles.DELETE("/:vehicleID", h.deleteVehicle)
		vehicles.GET("/:vehicleID/profitability", ah.getVehicleProfitability)
		vehicles.GET("/:vehicleID/transactions", th.listTransactionsByVehicle)
	}
}

// createVehicle godoc
// @Summary Register a new vehicle
// @Description Adds a new vehicle to the fleet
// @Tags vehicles
// @Accept  json
// @Produce  json
// @Param   vehicle body dto.CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Vehicle number already exists"
// @Failure 500 {object} map[string]string "Failed to create vehicle"
// @Router /vehicles [post]
func (h *vehicleHandler) createVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVehicle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.vehicleService.CreateVehicle(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate vehicle", slog.String("vehicle_number", req.VehicleNumber))
			c.JSON(http.StatusConflict, gin.H{"error": "Vehicle number already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating vehicle", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create vehicle in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle"})
		}
		return
	}

	logger.Info("Vehicle created successfully", slog.String("vehicle_id", created.VehicleID))
	c.JSON(http.StatusCreated, dto.ToVehicleResponse(created))
}

// getVehicleByID godoc
// @Summary Get a vehicle by ID
// @Description Retrieves details for a specific vehicle
// @Tags vehicles
// @Produce  json
// @Param   vehicleID path string true "Vehicle ID"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to retrieve vehicle"
// @Router /vehicles/{vehicleID} [get]
func (h *vehicleHandler) getVehicleByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("vehicleID")

	vehicle, err := h.vehicleService.GetVehicleByID(c.Request.Context(), vehicleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			logger.Error("Failed to get vehicle from service", slog.String("vehicle_id", vehicleID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vehicle"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// listVehicles godoc
// @Summary List all vehicles
// @Description Retrieves all vehicles in the fleet
// @Tags vehicles
// @Produce  json
// @Success 200 {array} dto.VehicleResponse
// @Failure 500 {object} map[string]string "Failed to list vehicles"
// @Router /vehicles [get]
func (h *vehicleHandler) listVehicles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list vehicles from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vehicles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListVehicleResponse(vehicles))
}

// updateVehicle godoc
// @Summary Update a vehicle
// @Description Updates an existing vehicle's details
// @Tags vehicles
// @Accept  json
// @Produce  json
// @Param   vehicleID path string true "Vehicle ID"
// @Param   vehicle body dto.UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 409 {object} map[string]string "Vehicle number already exists"
// @Failure 500 {object} map[string]string "Failed to update vehicle"
// @Router /vehicles/{vehicleID} [put]
func (h *vehicleHandler) updateVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("vehicleID")

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateVehicle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.vehicleService.UpdateVehicle(c.Request.Context(), vehicleID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Vehicle number already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update vehicle in service", slog.String("vehicle_id", vehicleID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		}
		return
	}

	logger.Info("Vehicle updated successfully", slog.String("vehicle_id", vehicleID))
	c.JSON(http.StatusOK, dto.ToVehicleResponse(updated))
}

// deleteVehicle godoc
// @Summary Delete a vehicle
// @Description Removes a vehicle; fails while transactions still reference it
// @Tags vehicles
// @Produce  json
// @Param   vehicleID path string true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 409 {object} map[string]string "Vehicle has transactions"
// @Failure 500 {object} map[string]string "Failed to delete vehicle"
// @Router /vehicles/{vehicleID} [delete]
func (h *vehicleHandler) deleteVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("vehicleID")

	err := h.vehicleService.DeleteVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Refused to delete vehicle with transactions", slog.String("vehicle_id", vehicleID))
			c.JSON(http.StatusConflict, gin.H{"error": "Vehicle still has transactions"})
		} else {
			logger.Error("Failed to delete vehicle in service", slog.String("vehicle_id", vehicleID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle"})
		}
		return
	}

	logger.Info("Vehicle deleted successfully", slog.String("vehicle_id", vehicleID))
	c.Status(http.StatusNoContent)
}
