package handlers

import (
	"errors"
	"net/http"

	"restaurant_pos_backend/internal/services"
	"restaurant_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MenuHandler holds the menu service.
type MenuHandler struct {
	menuService services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(ms services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: ms}
}

// CreateMenuItem handles adding a menu row.
func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var req services.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateMenuItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.menuService.CreateMenuItem(req)
	if err != nil {
		if errors.Is(err, services.ErrMenuDataValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid menu item data.", err.Error()))
		} else {
			utils.LogError(err, "CreateMenuItem: Error from menuService.CreateMenuItem")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetMenuItems returns the full menu ordered by id, for the management screen.
func (h *MenuHandler) GetMenuItems(c *gin.Context) {
	items, err := h.menuService.GetMenuItems()
	if err != nil {
		utils.LogError(err, "GetMenuItems: Error from menuService.GetMenuItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch menu.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetAvailableMenuItems returns the order-entry picker listing: items flagged
// available today, ordered by category then name.
func (h *MenuHandler) GetAvailableMenuItems(c *gin.Context) {
	items, err := h.menuService.GetAvailableMenuItems()
	if err != nil {
		utils.LogError(err, "GetAvailableMenuItems: Error from menuService.GetAvailableMenuItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch available menu.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuItemByID returns a single menu row.
func (h *MenuHandler) GetMenuItemByID(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid menu item ID format.", err.Error()))
		return
	}

	item, err := h.menuService.GetMenuItemByID(id)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", err.Error()))
		} else {
			utils.LogError(err, "GetMenuItemByID: Error from menuService.GetMenuItemByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateMenuItem handles editing a menu row.
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid menu item ID format.", err.Error()))
		return
	}

	var req services.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateMenuItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.menuService.UpdateMenuItem(id, req)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", err.Error()))
		} else if errors.Is(err, services.ErrMenuDataValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid menu item data.", err.Error()))
		} else {
			utils.LogError(err, "UpdateMenuItem: Error from menuService.UpdateMenuItem")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem handles deleting a menu row. Items referenced by recorded
// orders are refused with a conflict; retire them via the availability flag.
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid menu item ID format.", err.Error()))
		return
	}

	if err := h.menuService.DeleteMenuItem(id); err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", err.Error()))
		} else if errors.Is(err, services.ErrMenuItemInUse) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Menu item is referenced by recorded orders; set it unavailable instead.", err.Error()))
		} else {
			utils.LogError(err, "DeleteMenuItem: Error from menuService.DeleteMenuItem")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// SetAvailability toggles the available_today flag for one item. The daily
// menu screen calls this once per item.
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid menu item ID format.", err.Error()))
		return
	}

	var req services.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "SetAvailability: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	if err := h.menuService.SetAvailableToday(id, *req.Available); err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", err.Error()))
		} else {
			utils.LogError(err, "SetAvailability: Error from menuService.SetAvailableToday")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to set availability.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "available": *req.Available})
}
