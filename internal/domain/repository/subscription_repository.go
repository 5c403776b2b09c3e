package repository

import (
	"context"

	"github.com/stockplus/stockplus-server/internal/domain/model"
)

// PlanRepository handles subscription plan storage
type PlanRepository interface {
	GetAll(ctx context.Context) ([]*model.SubscriptionPlan, error)
	GetByID(ctx context.Context, id int64) (*model.SubscriptionPlan, error)
	GetByName(ctx context.Context, name string) (*model.SubscriptionPlan, error)
	GetFreeTrialPlan(ctx context.Context) (*model.SubscriptionPlan, error)
	Create(ctx context.Context, plan *model.SubscriptionPlan) error
	Update(ctx context.Context, plan *model.SubscriptionPlan) error
	Delete(ctx context.Context, id int64) error
	Upsert(ctx context.Context, plan *model.SubscriptionPlan) error

	// Pricing
	GetPricings(ctx context.Context, planID int64) ([]*model.SubscriptionPricing, error)
	CreatePricing(ctx context.Context, pricing *model.SubscriptionPricing) error
	// DeactivateSiblingPricings disables other active pricings of the same
	// plan, interval and currency so at most one stays current.
	DeactivateSiblingPricings(ctx context.Context, pricing *model.SubscriptionPricing) error
}

// SubscriptionRepository handles subscription storage
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Subscription, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Subscription, error)
	GetExpiring(ctx context.Context, withinDays int) ([]*model.Subscription, error)
	Create(ctx context.Context, sub *model.Subscription) error
	Update(ctx context.Context, sub *model.Subscription) error
	Delete(ctx context.Context, id int64) error
}
