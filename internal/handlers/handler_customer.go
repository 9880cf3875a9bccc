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

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
	invoiceService  portssvc.InvoiceSvcFacade
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(cs portssvc.CustomerSvcFacade, is portssvc.InvoiceSvcFacade) *customerHandler {
	return &customerHandler{
		customerService: cs,
		invoiceService:  is,
	}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade, invoiceService portssvc.InvoiceSvcFacade) {
	h := newCustomerHandler(customerService, invoiceService)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:customerID", h.getCustomerByID)
		customers.PUT("/:customerID", h.updateCustomer)
		customers.DELETE("/:customerID", h.deleteCustomer)
		customers.GET("/:customerID/invoices", h.listCustomerInvoices)
	}
}

// createCustomer godoc
// @Summary Create a new customer
// @Description Adds a new customer
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create customer"
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create customer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		}
		return
	}

	logger.Info("Customer created successfully", slog.String("customer_id", created.CustomerID))
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(created))
}

// getCustomerByID godoc
// @Summary Get a customer by ID
// @Description Retrieves details for a specific customer
// @Tags customers
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve customer"
// @Router /customers/{customerID} [get]
func (h *customerHandler) getCustomerByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to get customer from service", slog.String("customer_id", customerID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List all customers
// @Description Retrieves all customers
// @Tags customers
// @Produce  json
// @Success 200 {array} dto.CustomerResponse
// @Failure 500 {object} map[string]string "Failed to list customers"
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list customers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list customers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

// listCustomerInvoices godoc
// @Summary List a customer's invoices
// @Description Retrieves all invoices issued to one customer
// @Tags customers
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /customers/{customerID}/invoices [get]
func (h *customerHandler) listCustomerInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	invoices, err := h.invoiceService.ListInvoicesByCustomer(c.Request.Context(), customerID)
	if err != nil {
		logger.Error("Failed to list customer invoices from service", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// updateCustomer godoc
// @Summary Update a customer
// @Description Updates an existing customer's details
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Param   customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to update customer"
// @Router /customers/{customerID} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.customerService.UpdateCustomer(c.Request.Context(), customerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update customer in service", slog.String("customer_id", customerID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		}
		return
	}

	logger.Info("Customer updated successfully", slog.String("customer_id", customerID))
	c.JSON(http.StatusOK, dto.ToCustomerResponse(updated))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Description Removes a customer; fails while invoices still reference it
// @Tags customers
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 409 {object} map[string]string "Customer has invoices"
// @Failure 500 {object} map[string]string "Failed to delete customer"
// @Router /customers/{customerID} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	err := h.customerService.DeleteCustomer(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Refused to delete customer with invoices", slog.String("customer_id", customerID))
			c.JSON(http.StatusConflict, gin.H{"error": "Customer still has invoices"})
		} else {
			logger.Error("Failed to delete customer in service", slog.String("customer_id", customerID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		}
		return
	}

	logger.Info("Customer deleted successfully", slog.String("customer_id", customerID))
	c.Status(http.StatusNoContent)
}
