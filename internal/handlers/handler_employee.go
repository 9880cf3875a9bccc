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

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
	}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employeeID", h.getEmployeeByID)
		employees.PUT("/:employeeID", h.updateEmployee)
		employees.DELETE("/:employeeID", h.deleteEmployee)
	}
}

// createEmployee godoc
// @Summary Register a new employee
// @Description Adds an employee with payroll figures
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create employee"
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create employee in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		}
		return
	}

	logger.Info("Employee created successfully", slog.String("employee_id", created.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(created))
}

// getEmployeeByID godoc
// @Summary Get an employee by ID
// @Description Retrieves details for a specific employee, including net salary
// @Tags employees
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to retrieve employee"
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployeeByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			logger.Error("Failed to get employee from service", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employee"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List all employees
// @Description Retrieves all employees
// @Tags employees
// @Produce  json
// @Success 200 {array} dto.EmployeeResponse
// @Failure 500 {object} map[string]string "Failed to list employees"
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list employees from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list employees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Updates an existing employee's details or payroll figures
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to update employee"
// @Router /employees/{employeeID} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update employee in service", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		}
		return
	}

	logger.Info("Employee updated successfully", slog.String("employee_id", employeeID))
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(updated))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Removes an employee
// @Tags employees
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to delete employee"
// @Router /employees/{employeeID} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	err := h.employeeService.DeleteEmployee(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			logger.Error("Failed to delete employee in service", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		}
		return
	}

	logger.Info("Employee deleted successfully", slog.String("employee_id", employeeID))
	c.Status(http.StatusNoContent)
}
