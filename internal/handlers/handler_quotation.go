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

// quotationHandler handles HTTP requests related to quotations.
type quotationHandler struct {
	quotationService portssvc.QuotationSvcFacade
}

// newQuotationHandler creates a new quotationHandler.
func newQuotationHandler(qs portssvc.QuotationSvcFacade) *quotationHandler {
	return &quotationHandler{
		quotationService: qs,
	}
}

// registerQuotationRoutes registers routes related to quotations.
func registerQuotationRoutes(rg *gin.RouterGroup, quotationService portssvc.QuotationSvcFacade) {
	h := newQuotationHandler(quotationService)

	quotations := rg.Group("/quotations")
	{
		quotations.POST("", h.createQuotation)
		quotations.GET("", h.listQuotations)
		quotations.GET("/:quotationID", h.getQuotationByID)
		quotations.PUT("/:quotationID", h.updateQuotation)
		quotations.DELETE("/:quotationID", h.deleteQuotation)
		quotations.POST("/:quotationID/convert", h.convertToInvoice)
	}
}

// createQuotation godoc
// @Summary Create a new quotation
// @Description Creates a price offer for a customer
// @Tags quotations
// @Accept  json
// @Produce  json
// @Param   quotation body dto.CreateQuotationRequest true "Quotation details"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 409 {object} map[string]string "Quotation number already exists"
// @Failure 500 {object} map[string]string "Failed to create quotation"
// @Router /quotations [post]
func (h *quotationHandler) createQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateQuotation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.quotationService.CreateQuotation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Quotation references unknown customer", slog.String("customer_id", req.CustomerID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Quotation number already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create quotation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quotation"})
		}
		return
	}

	logger.Info("Quotation created successfully", slog.String("quotation_id", created.QuotationID))
	c.JSON(http.StatusCreated, dto.ToQuotationResponse(created))
}

// getQuotationByID godoc
// @Summary Get a quotation by ID
// @Description Retrieves details for a specific quotation
// @Tags quotations
// @Produce  json
// @Param   quotationID path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve quotation"
// @Router /quotations/{quotationID} [get]
func (h *quotationHandler) getQuotationByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotationID := c.Param("quotationID")

	quotation, err := h.quotationService.GetQuotationByID(c.Request.Context(), quotationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		} else {
			logger.Error("Failed to get quotation from service", slog.String("quotation_id", quotationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve quotation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuotationResponse(quotation))
}

// listQuotations godoc
// @Summary List all quotations
// @Description Retrieves all quotations
// @Tags quotations
// @Produce  json
// @Success 200 {array} dto.QuotationResponse
// @Failure 500 {object} map[string]string "Failed to list quotations"
// @Router /quotations [get]
func (h *quotationHandler) listQuotations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	quotations, err := h.quotationService.ListQuotations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list quotations from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quotations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListQuotationResponse(quotations))
}

// updateQuotation godoc
// @Summary Update a quotation
// @Description Updates an existing quotation
// @Tags quotations
// @Accept  json
// @Produce  json
// @Param   quotationID path string true "Quotation ID"
// @Param   quotation body dto.UpdateQuotationRequest true "Fields to update"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 500 {object} map[string]string "Failed to update quotation"
// @Router /quotations/{quotationID} [put]
func (h *quotationHandler) updateQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotationID := c.Param("quotationID")

	var req dto.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateQuotation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.quotationService.UpdateQuotation(c.Request.Context(), quotationID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update quotation in service", slog.String("quotation_id", quotationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quotation"})
		}
		return
	}

	logger.Info("Quotation updated successfully", slog.String("quotation_id", quotationID))
	c.JSON(http.StatusOK, dto.ToQuotationResponse(updated))
}

// deleteQuotation godoc
// @Summary Delete a quotation
// @Description Removes a quotation
// @Tags quotations
// @Produce  json
// @Param   quotationID path string true "Quotation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 500 {object} map[string]string "Failed to delete quotation"
// @Router /quotations/{quotationID} [delete]
func (h *quotationHandler) deleteQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotationID := c.Param("quotationID")

	err := h.quotationService.DeleteQuotation(c.Request.Context(), quotationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		} else {
			logger.Error("Failed to delete quotation in service", slog.String("quotation_id", quotationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quotation"})
		}
		return
	}

	logger.Info("Quotation deleted successfully", slog.String("quotation_id", quotationID))
	c.Status(http.StatusNoContent)
}

// convertToInvoice godoc
// @Summary Convert a quotation to an invoice
// @Description Creates a draft invoice from an accepted quotation
// @Tags quotations
// @Accept  json
// @Produce  json
// @Param   quotationID path string true "Quotation ID"
// @Param   conversion body dto.ConvertQuotationRequest true "Invoice number to assign"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Quotation not accepted"
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 409 {object} map[string]string "Invoice number already exists"
// @Failure 500 {object} map[string]string "Failed to convert quotation"
// @Router /quotations/{quotationID}/convert [post]
func (h *quotationHandler) convertToInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotationID := c.Param("quotationID")

	var req dto.ConvertQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertQuotation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.quotationService.ConvertToInvoice(c.Request.Context(), quotationID, req.InvoiceNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Invoice number already exists"})
		} else {
			logger.Error("Failed to convert quotation in service", slog.String("quotation_id", quotationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert quotation"})
		}
		return
	}

	logger.Info("Quotation converted to invoice",
		slog.String("quotation_id", quotationID),
		slog.String("invoice_id", invoice.InvoiceID))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}
