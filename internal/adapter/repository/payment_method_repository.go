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

type paymentMethodRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPaymentMethodRepository creates a new payment-method repository
func NewPaymentMethodRepository(db *gorm.DB, logger *zap.Logger) domainRepo.PaymentMethodRepository {
	return &paymentMethodRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a payment method by its ID
func (r *paymentMethodRepository) GetByID(ctx context.Context, id int64) (*model.PaymentMethod, error) {
	var pm model.PaymentMethod

	err := r.db.WithContext(ctx).First(&pm, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get payment method",
			zap.Int64("id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}

	return &pm, nil
}

// GetByPointOfSaleID retrieves all payment methods of a point of sale
func (r *paymentMethodRepository) GetByPointOfSaleID(ctx context.Context, posID int64) ([]*model.PaymentMethod, error) {
	var list []*model.PaymentMethod

	err := r.db.WithContext(ctx).
		Where("point_of_sale_id = ?", posID).
		Order("name ASC").
		Find(&list).Error

	if err != nil {
		r.logger.Error("Failed to get payment methods",
			zap.Int64("point_of_sale_id", posID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get payment methods: %w", err)
	}

	return list, nil
}

// Create creates a new payment method
func (r *paymentMethodRepository) Create(ctx context.Context, pm *model.PaymentMethod) error {
	err := r.db.WithContext(ctx).Create(pm).Error
	if err != nil {
		r.logger.Error("Failed to create payment method",
			zap.String("name", pm.Name),
			zap.Int64("point_of_sale_id", pm.PointOfSaleID),
			zap.Error(err))
		return fmt.Errorf("failed to create payment method: %w", err)
	}

	return nil
}

// Update updates an existing payment method. Select lists the mutable
// columns so boolean false values are written too.
func (r *paymentMethodRepository) Update(ctx context.Context, pm *model.PaymentMethod) error {
	err := r.db.WithContext(ctx).
		Model(&model.PaymentMethod{}).
		Where("id = ?", pm.ID).
		Select("name", "description", "is_active", "requires_confirmation", "confirmation_instructions").
		Updates(pm).Error

	if err != nil {
		r.logger.Error("Failed to update payment method",
			zap.Int64("id", pm.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update payment method: %w", err)
	}

	return nil
}

// Delete removes a payment method
func (r *paymentMethodRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&model.PaymentMethod{}, id).Error
	if err != nil {
		r.logger.Error("Failed to delete payment method",
			zap.Int64("id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete payment method: %w", err)
	}

	return nil
}
