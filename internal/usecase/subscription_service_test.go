package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/domain/model"
)

func TestSubscriptionService_CreatePlan(t *testing.T) {
	logger := zap.NewNop()

	t.Run("applies defaults and provisions a product", func(t *testing.T) {
		planRepo := new(MockPlanRepository)
		billing := new(MockBillingProvider)
		planRepo.On("GetByName", mock.Anything, "starter").Return(nil, nil)
		billing.On("CreateProduct", mock.Anything, mock.AnythingOfType("*model.SubscriptionPlan")).
			Return("prod_123", nil)
		planRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.SubscriptionPlan")).Return(nil)

		service := NewSubscriptionService(planRepo, new(MockSubscriptionRepository), billing, logger)
		plan, err := service.CreatePlan(context.Background(), CreatePlanInput{Name: "starter"})

		assert.NoError(t, err)
		assert.Equal(t, 3, plan.PosLimit)
		assert.Equal(t, 30, plan.TrialDays)
		assert.True(t, plan.Active)
		assert.False(t, plan.IsFreeTrial)
		assert.Equal(t, "prod_123", plan.StripeID)
		planRepo.AssertExpectations(t)
		billing.AssertExpectations(t)
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		planRepo := new(MockPlanRepository)
		planRepo.On("GetByName", mock.Anything, "starter").
			Return(&model.SubscriptionPlan{ID: 1, Name: "starter"}, nil)

		service := NewSubscriptionService(planRepo, new(MockSubscriptionRepository), new(MockBillingProvider), logger)
		plan, err := service.CreatePlan(context.Background(), CreatePlanInput{Name: "starter"})

		assert.ErrorIs(t, err, domainErrors.ErrPlanNameTaken)
		assert.Nil(t, plan)
	})

	t.Run("keeps the plan when provisioning fails", func(t *testing.T) {
		planRepo := new(MockPlanRepository)
		billing := new(MockBillingProvider)
		planRepo.On("GetByName", mock.Anything, "starter").Return(nil, nil)
		billing.On("CreateProduct", mock.Anything, mock.Anything).
			Return("", assert.AnError)
		planRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.SubscriptionPlan")).Return(nil)

		service := NewSubscriptionService(planRepo, new(MockSubscriptionRepository), billing, logger)
		plan, err := service.CreatePlan(context.Background(), CreatePlanInput{Name: "starter"})

		assert.NoError(t, err)
		assert.Empty(t, plan.StripeID)
	})
}

func TestSubscriptionService_CreatePricing(t *testing.T) {
	logger := zap.NewNop()

	t.Run("creates a pricing and deactivates siblings", func(t *testing.T) {
		planRepo := new(MockPlanRepository)
		billing := new(MockBillingProvider)
		planRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&model.SubscriptionPlan{ID: 1, Name: "starter", StripeID: "prod_123"}, nil)
		billing.On("CreatePrice", mock.Anything, "prod_123", mock.AnythingOfType("*model.SubscriptionPricing")).
			Return("price_456", nil)
		planRepo.On("CreatePricing", mock.Anything, mock.AnythingOfType("*model.SubscriptionPricing")).Return(nil)
		planRepo.On("DeactivateSiblingPricings", mock.Anything, mock.AnythingOfType("*model.SubscriptionPricing")).Return(nil)

		service := NewSubscriptionService(planRepo, new(MockSubscriptionRepository), billing, logger)
		pricing, err := service.CreatePricing(context.Background(), 1, CreatePricingInput{
			Interval: "month",
			Price:    decimal.RequireFromString("29.99"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "eur", pricing.Currency)
		assert.Equal(t, "price_456", pricing.StripeID)
		assert.True(t, pricing.IsActive)
		planRepo.AssertExpectations(t)
		billing.AssertExpectations(t)
	})

	t.Run("rejects an unknown interval", func(t *testing.T) {
		service := NewSubscriptionService(new(MockPlanRepository), new(MockSubscriptionRepository), new(MockBillingProvider), logger)
		pricing, err := service.CreatePricing(context.Background(), 1, CreatePricingInput{
			Interval: "quarter",
			Price:    decimal.RequireFromString("29.99"),
		})

		assert.ErrorIs(t, err, domainErrors.ErrInvalidInterval)
		assert.Nil(t, pricing)
	})
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	logger := zap.NewNop()

	t.Run("opens a pending subscription", func(t *testing.T) {
		planRepo := new(MockPlanRepository)
		subRepo := new(MockSubscriptionRepository)
		subRepo.On("GetByUserID", mock.Anything, int64(10)).Return(nil, nil)
		planRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&model.SubscriptionPlan{ID: 1, Name: "starter"}, nil)
		subRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Subscription")).Return(nil)

		service := NewSubscriptionService(planRepo, subRepo, new(MockBillingProvider), logger)
		sub, err := service.Subscribe(context.Background(), 10, 1, "month")

		assert.NoError(t, err)
		assert.Equal(t, model.SubscriptionStatusPending, sub.Status)
		assert.Equal(t, "month", sub.Interval)
		assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), sub.EndDate, time.Minute)
	})

	t.Run("rejects a second live subscription", func(t *testing.T) {
		subRepo := new(MockSubscriptionRepository)
		subRepo.On("GetByUserID", mock.Anything, int64(10)).
			Return(&model.Subscription{ID: 7, UserID: 10, Status: model.SubscriptionStatusActive}, nil)

		service := NewSubscriptionService(new(MockPlanRepository), subRepo, new(MockBillingProvider), logger)
		sub, err := service.Subscribe(context.Background(), 10, 1, "month")

		assert.ErrorIs(t, err, domainErrors.ErrSubscriptionExists)
		assert.Nil(t, sub)
	})

	t.Run("renews over an expired subscription", func(t *testing.T) {
		planRepo := new(MockPlanRepository)
		subRepo := new(MockSubscriptionRepository)
		subRepo.On("GetByUserID", mock.Anything, int64(10)).
			Return(&model.Subscription{ID: 7, UserID: 10, Status: model.SubscriptionStatusExpired}, nil)
		planRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&model.SubscriptionPlan{ID: 1, Name: "starter"}, nil)
		subRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Subscription")).Return(nil)

		service := NewSubscriptionService(planRepo, subRepo, new(MockBillingProvider), logger)
		sub, err := service.Subscribe(context.Background(), 10, 1, "year")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), sub.ID)
		assert.Equal(t, model.SubscriptionStatusPending, sub.Status)
	})

	t.Run("free trial plan sets the trial window", func(t *testing.T) {
		planRepo := new(MockPlanRepository)
		subRepo := new(MockSubscriptionRepository)
		planRepo.On("GetFreeTrialPlan", mock.Anything).
			Return(&model.SubscriptionPlan{ID: 9, Name: "free-trial", IsFreeTrial: true, TrialDays: 30}, nil)
		subRepo.On("GetByUserID", mock.Anything, int64(10)).Return(nil, nil)
		planRepo.On("GetByID", mock.Anything, int64(9)).
			Return(&model.SubscriptionPlan{ID: 9, Name: "free-trial", IsFreeTrial: true, TrialDays: 30}, nil)
		subRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Subscription")).Return(nil)

		service := NewSubscriptionService(planRepo, subRepo, new(MockBillingProvider), logger)
		sub, err := service.StartFreeTrial(context.Background(), 10)

		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), sub.EndDate, time.Minute)
	})
}

func TestSubscriptionService_Cancel(t *testing.T) {
	logger := zap.NewNop()

	t.Run("cancels an active subscription", func(t *testing.T) {
		subRepo := new(MockSubscriptionRepository)
		subRepo.On("GetByUserID", mock.Anything, int64(10)).
			Return(&model.Subscription{ID: 7, UserID: 10, Status: model.SubscriptionStatusActive}, nil)
		subRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Subscription")).Return(nil)

		service := NewSubscriptionService(new(MockPlanRepository), subRepo, new(MockBillingProvider), logger)
		sub, err := service.Cancel(context.Background(), 10)

		assert.NoError(t, err)
		assert.Equal(t, model.SubscriptionStatusCancelled, sub.Status)
	})

	t.Run("rejects cancelling an expired subscription", func(t *testing.T) {
		subRepo := new(MockSubscriptionRepository)
		subRepo.On("GetByUserID", mock.Anything, int64(10)).
			Return(&model.Subscription{ID: 7, UserID: 10, Status: model.SubscriptionStatusExpired}, nil)

		service := NewSubscriptionService(new(MockPlanRepository), subRepo, new(MockBillingProvider), logger)
		sub, err := service.Cancel(context.Background(), 10)

		assert.ErrorIs(t, err, domainErrors.ErrNoActiveSubscription)
		assert.Nil(t, sub)
	})
}

func TestSubscriptionService_ExpireOverdue(t *testing.T) {
	logger := zap.NewNop()
	subRepo := new(MockSubscriptionRepository)
	subRepo.On("GetExpiring", mock.Anything, 0).Return([]*model.Subscription{
		{ID: 1, Status: model.SubscriptionStatusActive},
		{ID: 2, Status: model.SubscriptionStatusActive},
	}, nil)
	subRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Subscription")).Return(nil).Twice()

	service := NewSubscriptionService(new(MockPlanRepository), subRepo, new(MockBillingProvider), logger)
	expired, err := service.ExpireOverdue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, expired)
	subRepo.AssertExpectations(t)
}
