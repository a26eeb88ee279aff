package router

import (
	"restaurant_pos_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the public authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}
}

// SetupStaffRoutes sets up the staff account routes.
func SetupStaffRoutes(authenticatedGroup *gin.RouterGroup, staffHandler *handlers.StaffHandler) {
	staffRoutes := authenticatedGroup.Group("/staff")
	{
		staffRoutes.POST("", staffHandler.AddStaff)
		staffRoutes.PATCH("/password", staffHandler.ChangePassword)
	}
}

// SetupMenuRoutes sets up the menu catalog and availability routes.
func SetupMenuRoutes(authenticatedGroup *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	menuRoutes := authenticatedGroup.Group("/menu")
	{
		menuRoutes.POST("", menuHandler.CreateMenuItem)
		menuRoutes.GET("", menuHandler.GetMenuItems)
		menuRoutes.GET("/available", menuHandler.GetAvailableMenuItems)
		menuRoutes.GET("/:id", menuHandler.GetMenuItemByID)
		menuRoutes.PUT("/:id", menuHandler.UpdateMenuItem)
		menuRoutes.DELETE("/:id", menuHandler.DeleteMenuItem)
		menuRoutes.PATCH("/:id/availability", menuHandler.SetAvailability)
	}
}

// SetupOrderRoutes sets up the order finalization and lookup routes.
func SetupOrderRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := authenticatedGroup.Group("/orders")
	{
		orderRoutes.POST("", orderHandler.FinalizeOrder)
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
		orderRoutes.GET("/:id/receipt", orderHandler.GetReceipt)
	}
}

// SetupReportRoutes sets up the sales reporting routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	{
		reportRoutes.GET("/daily-sales", reportHandler.GetDailySales)
		reportRoutes.GET("/summary", reportHandler.GetDashboardSummary)
	}
}
