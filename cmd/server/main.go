package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"restaurant_pos_backend/internal/database"
	"restaurant_pos_backend/internal/router"
	"restaurant_pos_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load .env file: %v", err)
	}

	// Initialize Logger
	utils.InitLogger()

	// Load application configuration from environment variables
	dbPath := utils.Getenv("DB_PATH", "data/restaurant.db")
	menuCSVPath := utils.Getenv("MENU_CSV_PATH", "data/menu.csv")
	receiptsDir := utils.Getenv("RECEIPTS_DIR", "receipts")
	storeName := utils.Getenv("STORE_NAME", "Restaurant POS")
	defaultStaffUser := utils.Getenv("DEFAULT_STAFF_USERNAME", "admin")
	defaultStaffPassword := utils.Getenv("DEFAULT_STAFF_PASSWORD", "admin123")

	// Initialize Database
	database.InitDB(dbPath, menuCSVPath, defaultStaffUser, defaultStaffPassword)
	utils.LogInfo("Database initialized", map[string]interface{}{"db_path": dbPath})

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"} // Default origins
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, database.GetDB(), receiptsDir, storeName)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
