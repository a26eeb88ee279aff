package handlers

import (
	"errors"
	"net/http"
	"os"

	"restaurant_pos_backend/internal/services"
	"restaurant_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order and receipt services.
type OrderHandler struct {
	orderService   services.OrderService
	receiptService services.ReceiptService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc services.OrderService, rs services.ReceiptService) *OrderHandler {
	return &OrderHandler{orderService: svc, receiptService: rs}
}

// FinalizeOrder handles finalizing the current order: bill computation,
// atomic persistence and best-effort receipt generation.
func (h *OrderHandler) FinalizeOrder(c *gin.Context) {
	var req services.FinalizeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "FinalizeOrder: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	resp, err := h.orderService.FinalizeOrder(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMenuItemNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "One or more menu items not found.", err.Error()))
		case errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrInvalidOrderType),
			errors.Is(err, services.ErrInvalidPaymentMethod),
			errors.Is(err, services.ErrInvalidPercentage),
			errors.Is(err, services.ErrEmptyOrder):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order data.", err.Error()))
		case errors.Is(err, services.ErrItemNotAvailable):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "One or more items are not available today.", err.Error()))
		default:
			utils.LogError(err, "FinalizeOrder: Error from orderService.FinalizeOrder")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetOrderByID handles fetching a recorded order with its items.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	orderID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order ID format.", err.Error()))
		return
	}

	order, err := h.orderService.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
		} else {
			utils.LogError(err, "GetOrderByID: Error from orderService.GetOrderByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetReceipt streams the PDF receipt for a recorded order, re-rendering it
// if the file is no longer on disk.
func (h *OrderHandler) GetReceipt(c *gin.Context) {
	orderID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order ID format.", err.Error()))
		return
	}

	path := h.receiptService.ReceiptPath(orderID)
	if _, statErr := os.Stat(path); statErr != nil {
		order, err := h.orderService.GetOrderByID(orderID)
		if err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
			} else {
				utils.LogError(err, "GetReceipt: Error from orderService.GetOrderByID")
				utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch order.", "Internal error"))
			}
			return
		}
		if path, err = h.receiptService.GenerateFromOrder(order); err != nil {
			utils.LogError(err, "GetReceipt: Failed to render receipt")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to render receipt.", "Internal error"))
			return
		}
	}

	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
