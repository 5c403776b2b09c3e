package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/domain/entity"
	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/domain/model"
	"github.com/stockplus/stockplus-server/internal/domain/repository"
)

// SubscriptionService handles plan management, pricing and the subscription
// lifecycle.
type SubscriptionService struct {
	planRepo         repository.PlanRepository
	subscriptionRepo repository.SubscriptionRepository
	billing          BillingProvider
	logger           *zap.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(
	planRepo repository.PlanRepository,
	subscriptionRepo repository.SubscriptionRepository,
	billing BillingProvider,
	logger *zap.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		billing:          billing,
		logger:           logger,
	}
}

// ListPlans returns every plan with features and active pricings preloaded
func (s *SubscriptionService) ListPlans(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	plans, err := s.planRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// GetPlan fetches a single plan
func (s *SubscriptionService) GetPlan(ctx context.Context, id int64) (*model.SubscriptionPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, domainErrors.ErrPlanNotFound
	}
	return plan, nil
}

// CreatePlanInput carries the fields accepted when creating a plan.
type CreatePlanInput struct {
	Name        string
	Description string
	GroupName   string
	PosLimit    *int
	IsFreeTrial bool
	TrialDays   *int
}

// CreatePlan registers a new plan and provisions its billing-provider
// product. Plan names are unique.
func (s *SubscriptionService) CreatePlan(ctx context.Context, input CreatePlanInput) (*model.SubscriptionPlan, error) {
	existing, err := s.planRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check plan name: %w", err)
	}
	if existing != nil {
		return nil, domainErrors.ErrPlanNameTaken
	}

	plan := &model.SubscriptionPlan{
		Name:        input.Name,
		Description: input.Description,
		GroupName:   input.GroupName,
		Active:      true,
		PosLimit:    3,
		IsFreeTrial: input.IsFreeTrial,
		TrialDays:   30,
	}
	if input.PosLimit != nil {
		plan.PosLimit = *input.PosLimit
	}
	if input.TrialDays != nil {
		plan.TrialDays = *input.TrialDays
	}

	productID, err := s.billing.CreateProduct(ctx, plan)
	if err != nil {
		s.logger.Warn("Failed to provision billing product",
			zap.String("plan", plan.Name),
			zap.Error(err))
	} else {
		plan.StripeID = productID
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	s.logger.Info("Plan created",
		zap.String("name", plan.Name),
		zap.Int("pos_limit", plan.PosLimit))

	return plan, nil
}

// UpdatePlanInput carries optional changes; nil fields keep their current
// value.
type UpdatePlanInput struct {
	Description *string
	GroupName   *string
	Active      *bool
	PosLimit    *int
	TrialDays   *int
}

// UpdatePlan applies partial changes to a plan
func (s *SubscriptionService) UpdatePlan(ctx context.Context, id int64, input UpdatePlanInput) (*model.SubscriptionPlan, error) {
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		plan.Description = *input.Description
	}
	if input.GroupName != nil {
		plan.GroupName = *input.GroupName
	}
	if input.Active != nil {
		plan.Active = *input.Active
	}
	if input.PosLimit != nil {
		plan.PosLimit = *input.PosLimit
	}
	if input.TrialDays != nil {
		plan.TrialDays = *input.TrialDays
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	return plan, nil
}

// DeletePlan removes a plan
func (s *SubscriptionService) DeletePlan(ctx context.Context, id int64) error {
	if _, err := s.GetPlan(ctx, id); err != nil {
		return err
	}
	if err := s.planRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	s.logger.Info("Plan deleted", zap.Int64("id", id))
	return nil
}

// CreatePricingInput carries the fields accepted when pricing a plan.
type CreatePricingInput struct {
	Interval string
	Price    decimal.Decimal
	Currency string
}

// CreatePricing attaches a priced billing interval to a plan. Other active
// pricings of the same plan, interval and currency are deactivated so at
// most one stays current. A billing-provider price is provisioned for the
// new pricing.
func (s *SubscriptionService) CreatePricing(ctx context.Context, planID int64, input CreatePricingInput) (*model.SubscriptionPricing, error) {
	if !validInterval(input.Interval) {
		return nil, domainErrors.ErrInvalidInterval
	}

	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	pricing := &model.SubscriptionPricing{
		PlanID:   plan.ID,
		Interval: input.Interval,
		Price:    input.Price,
		Currency: input.Currency,
		IsActive: true,
	}
	if pricing.Currency == "" {
		pricing.Currency = "eur"
	}

	if plan.StripeID != "" {
		priceID, err := s.billing.CreatePrice(ctx, plan.StripeID, pricing)
		if err != nil {
			s.logger.Warn("Failed to provision billing price",
				zap.Int64("plan_id", plan.ID),
				zap.Error(err))
		} else {
			pricing.StripeID = priceID
		}
	}

	if err := s.planRepo.CreatePricing(ctx, pricing); err != nil {
		return nil, fmt.Errorf("failed to create pricing: %w", err)
	}

	if err := s.planRepo.DeactivateSiblingPricings(ctx, pricing); err != nil {
		return nil, fmt.Errorf("failed to deactivate sibling pricings: %w", err)
	}

	s.logger.Info("Pricing created",
		zap.Int64("plan_id", plan.ID),
		zap.String("interval", pricing.Interval),
		zap.String("price", pricing.Price.String()))

	return pricing, nil
}

// ListPricings returns the pricings of a plan
func (s *SubscriptionService) ListPricings(ctx context.Context, planID int64) ([]*model.SubscriptionPricing, error) {
	if _, err := s.GetPlan(ctx, planID); err != nil {
		return nil, err
	}
	pricings, err := s.planRepo.GetPricings(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricings: %w", err)
	}
	return pricings, nil
}

// Subscribe opens a subscription for a user on the given plan and interval.
// A user holds at most one subscription.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID, planID int64, interval string) (*model.Subscription, error) {
	if !validInterval(interval) {
		return nil, domainErrors.ErrInvalidInterval
	}

	existing, err := s.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if existing != nil && existing.Status != model.SubscriptionStatusCancelled && existing.Status != model.SubscriptionStatusExpired {
		return nil, domainErrors.ErrSubscriptionExists
	}

	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	end := intervalEnd(now, interval)
	if plan.IsFreeTrial {
		end = now.AddDate(0, 0, plan.TrialDays)
	}

	sub := &model.Subscription{
		UserID:      userID,
		PlanID:      &plan.ID,
		Interval:    interval,
		StartDate:   now,
		EndDate:     end,
		RenewalDate: end,
		Status:      model.SubscriptionStatusPending,
	}

	if existing != nil {
		sub.ID = existing.ID
		sub.UID = existing.UID
		if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to renew subscription: %w", err)
		}
	} else {
		if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to create subscription: %w", err)
		}
	}

	s.logger.Info("Subscription opened",
		zap.Int64("user_id", userID),
		zap.Int64("plan_id", plan.ID),
		zap.String("interval", interval))

	return sub, nil
}

// Activate moves a pending subscription to active, typically after the first
// successful payment.
func (s *SubscriptionService) Activate(ctx context.Context, userID int64) (*model.Subscription, error) {
	sub, err := s.getForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sub.Status = model.SubscriptionStatusActive
	if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to activate subscription: %w", err)
	}

	s.logger.Info("Subscription activated", zap.Int64("user_id", userID))
	return sub, nil
}

// Cancel marks the user's subscription cancelled. Access runs until the end
// date already paid for.
func (s *SubscriptionService) Cancel(ctx context.Context, userID int64) (*model.Subscription, error) {
	sub, err := s.getForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub.Status != model.SubscriptionStatusActive && sub.Status != model.SubscriptionStatusPending {
		return nil, domainErrors.ErrNoActiveSubscription
	}

	sub.Status = model.SubscriptionStatusCancelled
	if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to cancel subscription: %w", err)
	}

	s.logger.Info("Subscription cancelled", zap.Int64("user_id", userID))
	return sub, nil
}

// GetForUser returns the user's subscription
func (s *SubscriptionService) GetForUser(ctx context.Context, userID int64) (*model.Subscription, error) {
	return s.getForUser(ctx, userID)
}

func (s *SubscriptionService) getForUser(ctx context.Context, userID int64) (*model.Subscription, error) {
	sub, err := s.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, domainErrors.ErrSubscriptionNotFound
	}
	return sub, nil
}

// StartFreeTrial opens a trial subscription on the free-trial plan.
func (s *SubscriptionService) StartFreeTrial(ctx context.Context, userID int64) (*model.Subscription, error) {
	plan, err := s.planRepo.GetFreeTrialPlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get free trial plan: %w", err)
	}
	if plan == nil {
		return nil, domainErrors.ErrPlanNotFound
	}
	return s.Subscribe(ctx, userID, plan.ID, entity.IntervalMonth)
}

// ExpireOverdue marks subscriptions past their end date as expired and
// returns how many were flipped. Meant to run on a schedule.
func (s *SubscriptionService) ExpireOverdue(ctx context.Context) (int, error) {
	overdue, err := s.subscriptionRepo.GetExpiring(ctx, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue subscriptions: %w", err)
	}

	expired := 0
	for _, sub := range overdue {
		sub.Status = model.SubscriptionStatusExpired
		if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
			s.logger.Error("Failed to expire subscription",
				zap.Int64("id", sub.ID),
				zap.Error(err))
			continue
		}
		expired++
	}

	if expired > 0 {
		s.logger.Info("Expired overdue subscriptions", zap.Int("count", expired))
	}
	return expired, nil
}

// validInterval reports whether the billing interval is one we sell.
func validInterval(interval string) bool {
	switch interval {
	case entity.IntervalDay, entity.IntervalWeek, entity.IntervalMonth,
		entity.IntervalSemester, entity.IntervalYear:
		return true
	}
	return false
}

// intervalEnd computes the end of a billing period starting at from.
func intervalEnd(from time.Time, interval string) time.Time {
	switch interval {
	case entity.IntervalDay:
		return from.AddDate(0, 0, 1)
	case entity.IntervalWeek:
		return from.AddDate(0, 0, 7)
	case entity.IntervalSemester:
		return from.AddDate(0, 6, 0)
	case entity.IntervalYear:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}
