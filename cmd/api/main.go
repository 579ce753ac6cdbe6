package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/salesdesk/salesdesk-api/internal/application/service"
	"github.com/salesdesk/salesdesk-api/internal/config"
	"github.com/salesdesk/salesdesk-api/internal/infrastructure/database"
	"github.com/salesdesk/salesdesk-api/internal/infrastructure/repository"
	"github.com/salesdesk/salesdesk-api/internal/presentation/http/handler"
	"github.com/salesdesk/salesdesk-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	itemRepo := repository.NewItemRepository(db)

	// Initialize services
	orderService := service.NewOrderService(orderRepo, itemRepo, customerRepo)
	customerService := service.NewCustomerService(customerRepo)
	itemService := service.NewItemService(itemRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Order:    handler.NewOrderHandler(orderService),
		Customer: handler.NewCustomerHandler(customerService),
		Item:     handler.NewItemHandler(itemService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
