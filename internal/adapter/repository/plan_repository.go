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

type planRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB, logger *zap.Logger) domainRepo.PlanRepository {
	return &planRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves all active subscription plans with features and pricings
func (r *planRepository) GetAll(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	var plans []*model.SubscriptionPlan

	err := r.db.WithContext(ctx).
		Preload("Features").
		Preload("Pricings", "is_active = ?", true).
		Where("active = ?", true).
		Order("name ASC").
		Find(&plans).Error

	if err != nil {
		r.logger.Error("Failed to get all plans", zap.Error(err))
		return nil, fmt.Errorf("failed to get plans: %w", err)
	}

	return plans, nil
}

// GetByID retrieves a plan by its ID
func (r *planRepository) GetByID(ctx context.Context, id int64) (*model.SubscriptionPlan, error) {
	var plan model.SubscriptionPlan

	err := r.db.WithContext(ctx).
		Preload("Features").
		Preload("Pricings", "is_active = ?", true).
		First(&plan, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get plan",
			zap.Int64("id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return &plan, nil
}

// GetByName retrieves a plan by its unique name
func (r *planRepository) GetByName(ctx context.Context, name string) (*model.SubscriptionPlan, error) {
	var plan model.SubscriptionPlan

	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&plan).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get plan by name",
			zap.String("name", name),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return &plan, nil
}

// GetFreeTrialPlan retrieves the active free-trial plan, if any
func (r *planRepository) GetFreeTrialPlan(ctx context.Context) (*model.SubscriptionPlan, error) {
	var plan model.SubscriptionPlan

	err := r.db.WithContext(ctx).
		Where("is_free_trial = ? AND active = ?", true, true).
		First(&plan).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get free trial plan", zap.Error(err))
		return nil, fmt.Errorf("failed to get free trial plan: %w", err)
	}

	return &plan, nil
}

// Create creates a new subscription plan
func (r *planRepository) Create(ctx context.Context, plan *model.SubscriptionPlan) error {
	err := r.db.WithContext(ctx).Create(plan).Error
	if err != nil {
		r.logger.Error("Failed to create plan",
			zap.String("name", plan.Name),
			zap.Error(err))
		return fmt.Errorf("failed to create plan: %w", err)
	}

	return nil
}

// Update updates an existing subscription plan
func (r *planRepository) Update(ctx context.Context, plan *model.SubscriptionPlan) error {
	err := r.db.WithContext(ctx).
		Model(&model.SubscriptionPlan{}).
		Where("id = ?", plan.ID).
		Select("name", "description", "active", "group_name", "stripe_id", "pos_limit", "is_free_trial", "trial_days").
		Updates(plan).Error

	if err != nil {
		r.logger.Error("Failed to update plan",
			zap.Int64("id", plan.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update plan: %w", err)
	}

	return nil
}

// Delete soft deletes a subscription plan
func (r *planRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).
		Model(&model.SubscriptionPlan{}).
		Where("id = ?", id).
		Update("active", false).Error

	if err != nil {
		r.logger.Error("Failed to delete plan",
			zap.Int64("id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	return nil
}

// Upsert creates or updates a subscription plan keyed by name
func (r *planRepository) Upsert(ctx context.Context, plan *model.SubscriptionPlan) error {
	existing, err := r.GetByName(ctx, plan.Name)
	if err != nil {
		return err
	}

	if existing != nil {
		plan.ID = existing.ID
		return r.Update(ctx, plan)
	}

	return r.Create(ctx, plan)
}

// GetPricings retrieves the active pricings of a plan
func (r *planRepository) GetPricings(ctx context.Context, planID int64) ([]*model.SubscriptionPricing, error) {
	var pricings []*model.SubscriptionPricing

	err := r.db.WithContext(ctx).
		Where("plan_id = ? AND is_active = ?", planID, true).
		Order("interval ASC").
		Find(&pricings).Error

	if err != nil {
		r.logger.Error("Failed to get pricings",
			zap.Int64("plan_id", planID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get pricings: %w", err)
	}

	return pricings, nil
}

// CreatePricing creates a new pricing for a plan
func (r *planRepository) CreatePricing(ctx context.Context, pricing *model.SubscriptionPricing) error {
	err := r.db.WithContext(ctx).Create(pricing).Error
	if err != nil {
		r.logger.Error("Failed to create pricing",
			zap.Int64("plan_id", pricing.PlanID),
			zap.String("interval", pricing.Interval),
			zap.Error(err))
		return fmt.Errorf("failed to create pricing: %w", err)
	}

	return nil
}

// DeactivateSiblingPricings disables other active pricings with the same
// plan, interval and currency so at most one stays current.
func (r *planRepository) DeactivateSiblingPricings(ctx context.Context, pricing *model.SubscriptionPricing) error {
	err := r.db.WithContext(ctx).
		Model(&model.SubscriptionPricing{}).
		Where("plan_id = ? AND interval = ? AND currency = ? AND id <> ?",
			pricing.PlanID, pricing.Interval, pricing.Currency, pricing.ID).
		Update("is_active", false).Error

	if err != nil {
		r.logger.Error("Failed to deactivate sibling pricings",
			zap.Int64("plan_id", pricing.PlanID),
			zap.Error(err))
		return fmt.Errorf("failed to deactivate sibling pricings: %w", err)
	}

	return nil
}
