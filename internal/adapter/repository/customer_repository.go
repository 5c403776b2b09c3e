package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/stockplus/stockplus-server/internal/domain/model"
	domainRepo "github.com/stockplus/stockplus-server/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type customerRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB, logger *zap.Logger) domainRepo.CustomerRepository {
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a customer by its ID
func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var customer model.Customer

	err := r.db.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get customer",
			zap.Int64("id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

// GetByUserID retrieves the customer record of a user
func (r *customerRepository) GetByUserID(ctx context.Context, userID int64) (*model.Customer, error) {
	var customer model.Customer

	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get customer by user",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

// GetByStripeID retrieves a customer by its Stripe customer ID
func (r *customerRepository) GetByStripeID(ctx context.Context, stripeID string) (*model.Customer, error) {
	var customer model.Customer

	err := r.db.WithContext(ctx).Where("stripe_id = ?", stripeID).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get customer by stripe ID",
			zap.String("stripe_id", stripeID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

// List retrieves a page of customers with the total count
func (r *customerRepository) List(ctx context.Context, offset, limit int) ([]*model.Customer, int64, error) {
	var customers []*model.Customer
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Customer{}).Count(&total).Error; err != nil {
		r.logger.Error("Failed to count customers", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&customers).Error

	if err != nil {
		r.logger.Error("Failed to list customers", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, total, nil
}

// Create creates a new customer
func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	err := r.db.WithContext(ctx).Create(customer).Error
	if err != nil {
		r.logger.Error("Failed to create customer",
			zap.Int64("user_id", customer.UserID),
			zap.Error(err))
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// Update updates an existing customer
func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ?", customer.ID).
		Select("stripe_id", "is_active").
		Updates(customer).Error

	if err != nil {
		r.logger.Error("Failed to update customer",
			zap.Int64("id", customer.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

// Delete soft deletes a customer
func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ?", id).
		Update("is_active", false).Error

	if err != nil {
		r.logger.Error("Failed to delete customer",
			zap.Int64("id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}
