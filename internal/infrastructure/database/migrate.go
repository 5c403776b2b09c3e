package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stockplus/stockplus-server/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	logger.Info("Creating PostgreSQL extensions...")
	if err := createExtensions(db); err != nil {
		logger.Error("Failed to create extensions", zap.Error(err))
		return err
	}

	logger.Info("Creating custom PostgreSQL types...")
	if err := createCustomTypes(db); err != nil {
		logger.Error("Failed to create custom types", zap.Error(err))
		return err
	}

	logger.Info("Running GORM auto-migrations...")
	err := db.AutoMigrate(
		&model.PointOfSale{},
		&model.Collaborator{},
		&model.PaymentMethod{},
		&model.Customer{},
		&model.SubscriptionPlan{},
		&model.Feature{},
		&model.SubscriptionPricing{},
		&model.Subscription{},
		&model.Invitation{},
		&model.Sale{},
		&model.SaleItem{},
		&model.MediaFile{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	logger.Info("Applying schema changes...")
	if err := ApplySchemaChanges(db, logger); err != nil {
		logger.Error("Failed to apply schema changes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createExtensions creates required PostgreSQL extensions
func createExtensions(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return err
	}
	return nil
}

// createCustomTypes creates custom PostgreSQL types
func createCustomTypes(db *gorm.DB) error {
	var exists bool
	db.Raw(`SELECT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'subscription_status')`).Scan(&exists)
	if !exists {
		if err := db.Exec(`CREATE TYPE subscription_status AS ENUM ('pending', 'active', 'expired', 'cancelled')`).Error; err != nil {
			return err
		}
	}
	return nil
}
