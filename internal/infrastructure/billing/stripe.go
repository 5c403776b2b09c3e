package billing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/price"
	"github.com/stripe/stripe-go/v79/product"
	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/domain/entity"
	"github.com/stockplus/stockplus-server/internal/domain/model"
)

// Init configures the global Stripe client key. Call once at startup.
func Init(secretKey string) {
	stripe.Key = secretKey
}

// StripeProvider provisions customers, products and prices on Stripe.
type StripeProvider struct {
	logger *zap.Logger
}

// NewStripeProvider creates a new Stripe billing provider
func NewStripeProvider(logger *zap.Logger) *StripeProvider {
	return &StripeProvider{logger: logger}
}

// CreateCustomer registers a customer on Stripe and returns its ID. The user
// ID travels in metadata so webhook handlers can map events back.
func (p *StripeProvider) CreateCustomer(ctx context.Context, userID int64, email string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.AddMetadata("user_id", fmt.Sprintf("%d", userID))

	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}

	p.logger.Info("Stripe customer created",
		zap.Int64("user_id", userID),
		zap.String("customer_id", cust.ID))

	return cust.ID, nil
}

// CreateProduct registers a plan as a Stripe product and returns its ID.
func (p *StripeProvider) CreateProduct(ctx context.Context, plan *model.SubscriptionPlan) (string, error) {
	params := &stripe.ProductParams{
		Name: stripe.String(plan.Name),
	}
	if plan.Description != "" {
		params.Description = stripe.String(plan.Description)
	}
	params.AddMetadata("pos_limit", fmt.Sprintf("%d", plan.PosLimit))

	prod, err := product.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe product: %w", err)
	}

	p.logger.Info("Stripe product created",
		zap.String("plan", plan.Name),
		zap.String("product_id", prod.ID))

	return prod.ID, nil
}

// CreatePrice registers a pricing as a recurring Stripe price and returns its
// ID. Amounts are sent in minor units.
func (p *StripeProvider) CreatePrice(ctx context.Context, productID string, pricing *model.SubscriptionPricing) (string, error) {
	interval, intervalCount := stripeInterval(pricing.Interval)

	params := &stripe.PriceParams{
		Product:    stripe.String(productID),
		Currency:   stripe.String(pricing.Currency),
		UnitAmount: stripe.Int64(minorUnits(pricing.Price)),
		Recurring: &stripe.PriceRecurringParams{
			Interval:      stripe.String(interval),
			IntervalCount: stripe.Int64(intervalCount),
		},
	}

	pr, err := price.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe price: %w", err)
	}

	p.logger.Info("Stripe price created",
		zap.String("product_id", productID),
		zap.String("price_id", pr.ID),
		zap.String("interval", pricing.Interval))

	return pr.ID, nil
}

// stripeInterval maps a billing interval to Stripe's interval vocabulary.
// Semesters become six-month periods. Unknown intervals fall back to monthly.
func stripeInterval(interval string) (string, int64) {
	switch interval {
	case entity.IntervalDay:
		return "day", 1
	case entity.IntervalWeek:
		return "week", 1
	case entity.IntervalMonth:
		return "month", 1
	case entity.IntervalSemester:
		return "month", 6
	case entity.IntervalYear:
		return "year", 1
	default:
		return "month", 1
	}
}

// minorUnits converts a decimal amount to the smallest currency unit.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
