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

// purchaseOrderHandler handles HTTP requests related to purchase orders.
type purchaseOrderHandler struct {
	purchaseOrderService portssvc.PurchaseOrderSvcFacade
}

// newPurchaseOrderHandler creates a new purchaseOrderHandler.
func newPurchaseOrderHandler(ps portssvc.PurchaseOrderSvcFacade) *purchaseOrderHandler {
	return &purchaseOrderHandler{
		purchaseOrderService: ps,
	}
}

// registerPurchaseOrderRoutes registers routes related to purchase orders.
func registerPurchaseOrderRoutes(rg *gin.RouterGroup, purchaseOrderService portssvc.PurchaseOrderSvcFacade) {
	h := newPurchaseOrderHandler(purchaseOrderService)

	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.createPurchaseOrder)
		orders.GET("", h.listPurchaseOrders)
		orders.GET("/:purchaseOrderID", h.getPurchaseOrderByID)
		orders.PUT("/:purchaseOrderID", h.updatePurchaseOrder)
		orders.DELETE("/:purchaseOrderID", h.deletePurchaseOrder)
	}
}

// createPurchaseOrder godoc
// @Summary Create a new purchase order
// @Description Records an order placed with a supplier
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   purchaseOrder body dto.CreatePurchaseOrderRequest true "Purchase order details"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "PO number already exists"
// @Failure 500 {object} map[string]string "Failed to create purchase order"
// @Router /purchase-orders [post]
func (h *purchaseOrderHandler) createPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchaseOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.purchaseOrderService.CreatePurchaseOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "PO number already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create purchase order in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create purchase order"})
		}
		return
	}

	logger.Info("Purchase order created successfully", slog.String("purchase_order_id", created.PurchaseOrderID))
	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(created))
}

// getPurchaseOrderByID godoc
// @Summary Get a purchase order by ID
// @Description Retrieves details for a specific purchase order
// @Tags purchase-orders
// @Produce  json
// @Param   purchaseOrderID path string true "Purchase Order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve purchase order"
// @Router /purchase-orders/{purchaseOrderID} [get]
func (h *purchaseOrderHandler) getPurchaseOrderByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseOrderID := c.Param("purchaseOrderID")

	po, err := h.purchaseOrderService.GetPurchaseOrderByID(c.Request.Context(), purchaseOrderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
		} else {
			logger.Error("Failed to get purchase order from service", slog.String("purchase_order_id", purchaseOrderID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve purchase order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(po))
}

// listPurchaseOrders godoc
// @Summary List all purchase orders
// @Description Retrieves all purchase orders
// @Tags purchase-orders
// @Produce  json
// @Success 200 {array} dto.PurchaseOrderResponse
// @Failure 500 {object} map[string]string "Failed to list purchase orders"
// @Router /purchase-orders [get]
func (h *purchaseOrderHandler) listPurchaseOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orders, err := h.purchaseOrderService.ListPurchaseOrders(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list purchase orders from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list purchase orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchaseOrderResponse(orders))
}

// updatePurchaseOrder godoc
// @Summary Update a purchase order
// @Description Updates an existing purchase order
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   purchaseOrderID path string true "Purchase Order ID"
// @Param   purchaseOrder body dto.UpdatePurchaseOrderRequest true "Fields to update"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Failure 500 {object} map[string]string "Failed to update purchase order"
// @Router /purchase-orders/{purchaseOrderID} [put]
func (h *purchaseOrderHandler) updatePurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseOrderID := c.Param("purchaseOrderID")

	var req dto.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePurchaseOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.purchaseOrderService.UpdatePurchaseOrder(c.Request.Context(), purchaseOrderID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update purchase order in service", slog.String("purchase_order_id", purchaseOrderID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update purchase order"})
		}
		return
	}

	logger.Info("Purchase order updated successfully", slog.String("purchase_order_id", purchaseOrderID))
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(updated))
}

// deletePurchaseOrder godoc
// @Summary Delete a purchase order
// @Description Removes a purchase order
// @Tags purchase-orders
// @Produce  json
// @Param   purchaseOrderID path string true "Purchase Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Failure 500 {object} map[string]string "Failed to delete purchase order"
// @Router /purchase-orders/{purchaseOrderID} [delete]
func (h *purchaseOrderHandler) deletePurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseOrderID := c.Param("purchaseOrderID")

	err := h.purchaseOrderService.DeletePurchaseOrder(c.Request.Context(), purchaseOrderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
		} else {
			logger.Error("Failed to delete purchase order in service", slog.String("purchase_order_id", purchaseOrderID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete purchase order"})
		}
		return
	}

	logger.Info("Purchase order deleted successfully", slog.String("purchase_order_id", purchaseOrderID))
	c.Status(http.StatusNoContent)
}
