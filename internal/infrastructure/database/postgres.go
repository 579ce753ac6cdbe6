package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/salesdesk/salesdesk-api/internal/config"
	"github.com/salesdesk/salesdesk-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Reference data
		&entity.Customer{},
		&entity.Item{},

		// Transaction entities
		&entity.SalesOrder{},
		&entity.SalesOrderLine{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the catalog and customer reference tables when
// they are empty, so a fresh environment has something to order against.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var itemCount int64
	if err := db.Model(&entity.Item{}).Count(&itemCount).Error; err != nil {
		return fmt.Errorf("failed to count items: %w", err)
	}

	if itemCount == 0 {
		items := []entity.Item{
			{Code: "ITEM001", Description: "Laptop Pro", UnitPrice: decimal.NewFromFloat(1500.00)},
			{Code: "ITEM002", Description: "Wireless Mouse", UnitPrice: decimal.NewFromFloat(39.95)},
			{Code: "ITEM003", Description: "USB-C Dock", UnitPrice: decimal.NewFromFloat(249.50)},
			{Code: "ITEM004", Description: "27in Monitor", UnitPrice: decimal.NewFromFloat(449.00)},
			{Code: "ITEM005", Description: "Mechanical Keyboard", UnitPrice: decimal.NewFromFloat(129.00)},
		}
		if err := db.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to seed items: %w", err)
		}
		log.Printf("Seeded %d catalog items", len(items))
	}

	var customerCount int64
	if err := db.Model(&entity.Customer{}).Count(&customerCount).Error; err != nil {
		return fmt.Errorf("failed to count customers: %w", err)
	}

	if customerCount == 0 {
		customers := []entity.Customer{
			{
				Name:     "Acme Pty Ltd",
				Address1: "123 Main St",
				Address2: "Level 2",
				Suburb:   "Richmond",
				State:    "VIC",
				PostCode: "3121",
			},
			{
				Name:     "Globex Corp",
				Address1: "9 Harbour Rd",
				Suburb:   "Sydney",
				State:    "NSW",
				PostCode: "2000",
			},
			{
				Name:     "Initech Ltd",
				Address1: "742 Evergreen Tce",
				Suburb:   "Brisbane",
				State:    "QLD",
				PostCode: "4000",
			},
		}
		if err := db.Create(&customers).Error; err != nil {
			return fmt.Errorf("failed to seed customers: %w", err)
		}
		log.Printf("Seeded %d customers", len(customers))
	}

	log.Println("Default data seeding completed")
	return nil
}
