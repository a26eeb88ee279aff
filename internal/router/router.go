package router

import (
	"database/sql"

	"restaurant_pos_backend/internal/handlers"
	"restaurant_pos_backend/internal/middleware"
	"restaurant_pos_backend/internal/repositories"
	"restaurant_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, receiptsDir, storeName string) {
	// Initialize Repositories
	staffRepo := repositories.NewStaffRepository(db)
	menuRepo := repositories.NewMenuRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// Initialize Services
	receiptService := services.NewReceiptService(receiptsDir, storeName)
	authService := services.NewAuthService(staffRepo)
	staffService := services.NewStaffService(staffRepo, db)
	menuService := services.NewMenuService(menuRepo, db)
	orderService := services.NewOrderService(orderRepo, menuRepo, receiptService, db)
	reportService := services.NewReportService(orderRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	staffHandler := handlers.NewStaffHandler(staffService)
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService, receiptService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes. Everything else requires a valid token.
	SetupAuthRoutes(apiV1, authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupStaffRoutes(authenticated, staffHandler)
		SetupMenuRoutes(authenticated, menuHandler)
		SetupOrderRoutes(authenticated, orderHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}
}
