package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/domain/entity"
	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/domain/model"
	"github.com/stockplus/stockplus-server/internal/domain/repository"
)

// BillingProvider provisions billing-side resources. The Stripe
// implementation lives in the infrastructure layer.
type BillingProvider interface {
	CreateCustomer(ctx context.Context, userID int64, email string) (string, error)
	CreateProduct(ctx context.Context, plan *model.SubscriptionPlan) (string, error)
	CreatePrice(ctx context.Context, productID string, pricing *model.SubscriptionPricing) (string, error)
}

// CustomerService handles customer records and their billing-provider
// counterpart.
type CustomerService struct {
	customerRepo repository.CustomerRepository
	billing      BillingProvider
	logger       *zap.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	billing BillingProvider,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		billing:      billing,
		logger:       logger,
	}
}

// GetOrCreate returns the customer record for a user, creating one on first
// use. The billing-provider customer is provisioned lazily; a provider
// failure does not block the local record.
func (s *CustomerService) GetOrCreate(ctx context.Context, userID int64, email string) (*model.Customer, error) {
	existing, err := s.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	cust := &model.Customer{
		UserID:   userID,
		IsActive: true,
	}

	stripeID, err := s.billing.CreateCustomer(ctx, userID, email)
	if err != nil {
		s.logger.Warn("Failed to provision billing customer",
			zap.Int64("user_id", userID),
			zap.Error(err))
	} else {
		cust.StripeID = stripeID
	}

	if err := s.customerRepo.Create(ctx, cust); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("Customer created",
		zap.Int64("user_id", userID),
		zap.String("stripe_id", cust.StripeID))

	return cust, nil
}

// GetByUserID fetches the customer record of a user
func (s *CustomerService) GetByUserID(ctx context.Context, userID int64) (*model.Customer, error) {
	cust, err := s.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if cust == nil {
		return nil, domainErrors.ErrCustomerNotFound
	}
	return cust, nil
}

// List returns a page of customers
func (s *CustomerService) List(ctx context.Context, params entity.PaginationParams) ([]*model.Customer, entity.PaginationMeta, error) {
	params.Validate()

	items, total, err := s.customerRepo.List(ctx, params.CalculateOffset(), params.Limit)
	if err != nil {
		return nil, entity.PaginationMeta{}, fmt.Errorf("failed to list customers: %w", err)
	}

	meta := entity.NewPaginationMeta(params.Page, params.Limit, total)
	return items, meta, nil
}

// EnsureStripeID returns the billing-provider ID of a user's customer,
// provisioning it on demand. Unlike GetOrCreate, a provider failure here is
// an error because the caller explicitly asked for the billing counterpart.
func (s *CustomerService) EnsureStripeID(ctx context.Context, userID int64, email string) (*model.Customer, error) {
	cust, err := s.GetOrCreate(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	if cust.StripeID != "" {
		return cust, nil
	}

	stripeID, err := s.billing.CreateCustomer(ctx, userID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to provision billing customer: %w", err)
	}

	cust.StripeID = stripeID
	if err := s.customerRepo.Update(ctx, cust); err != nil {
		return nil, fmt.Errorf("failed to save billing customer id: %w", err)
	}

	s.logger.Info("Billing customer provisioned",
		zap.Int64("user_id", userID),
		zap.String("stripe_id", stripeID))

	return cust, nil
}

// Deactivate marks a customer inactive without deleting its history
func (s *CustomerService) Deactivate(ctx context.Context, userID int64) (*model.Customer, error) {
	cust, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cust.IsActive = false
	if err := s.customerRepo.Update(ctx, cust); err != nil {
		return nil, fmt.Errorf("failed to deactivate customer: %w", err)
	}

	s.logger.Info("Customer deactivated", zap.Int64("user_id", userID))
	return cust, nil
}
