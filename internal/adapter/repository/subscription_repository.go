package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stockplus/stockplus-server/internal/domain/model"
	domainRepo "github.com/stockplus/stockplus-server/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type subscriptionRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB, logger *zap.Logger) domainRepo.SubscriptionRepository {
	return &subscriptionRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a subscription with its plan
func (r *subscriptionRepository) GetByID(ctx context.Context, id int64) (*model.Subscription, error) {
	var sub model.Subscription

	err := r.db.WithContext(ctx).
		Preload("Plan").
		First(&sub, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get subscription",
			zap.Int64("id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

// GetByUserID retrieves a user's subscription with its plan
func (r *subscriptionRepository) GetByUserID(ctx context.Context, userID int64) (*model.Subscription, error) {
	var sub model.Subscription

	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get subscription by user",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

// GetExpiring retrieves active subscriptions whose end date falls within the
// given number of days.
func (r *subscriptionRepository) GetExpiring(ctx context.Context, withinDays int) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	cutoff := time.Now().AddDate(0, 0, withinDays)

	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("status = ? AND end_date <= ?", model.SubscriptionStatusActive, cutoff).
		Order("end_date ASC").
		Find(&subs).Error

	if err != nil {
		r.logger.Error("Failed to get expiring subscriptions",
			zap.Int("within_days", withinDays),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get expiring subscriptions: %w", err)
	}

	return subs, nil
}

// Create creates a new subscription
func (r *subscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	err := r.db.WithContext(ctx).Create(sub).Error
	if err != nil {
		r.logger.Error("Failed to create subscription",
			zap.Int64("user_id", sub.UserID),
			zap.Error(err))
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// Update updates an existing subscription
func (r *subscriptionRepository) Update(ctx context.Context, sub *model.Subscription) error {
	err := r.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("id = ?", sub.ID).
		Select("plan_id", "interval", "start_date", "end_date", "renewal_date", "status").
		Updates(sub).Error

	if err != nil {
		r.logger.Error("Failed to update subscription",
			zap.Int64("id", sub.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	return nil
}

// Delete removes a subscription
func (r *subscriptionRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&model.Subscription{}, id).Error
	if err != nil {
		r.logger.Error("Failed to delete subscription",
			zap.Int64("id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	return nil
}
