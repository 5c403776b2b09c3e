package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription statuses
const (
	SubscriptionStatusPending   = "pending"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusExpired   = "expired"
	SubscriptionStatusCancelled = "cancelled"
)

// Billing intervals
const (
	IntervalDay      = "day"
	IntervalWeek     = "week"
	IntervalMonth    = "month"
	IntervalSemester = "semester"
	IntervalYear     = "year"
)

// SubscriptionPlan describes a sellable tier. A plan maps to a Stripe product.
// PosLimit caps how many points of sale a subscriber may run; 0 means
// unlimited.
type SubscriptionPlan struct {
	ID          int64     `json:"id"`
	UID         string    `json:"uid"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	GroupName   string    `json:"group_name"`
	StripeID    string    `json:"stripe_id,omitempty"`
	PosLimit    int       `json:"pos_limit"`
	IsFreeTrial bool      `json:"is_free_trial"`
	TrialDays   int       `json:"trial_days"`
	Features    []Feature `json:"features,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSubscriptionPlan returns a plan with its documented defaults.
func NewSubscriptionPlan() SubscriptionPlan {
	return SubscriptionPlan{
		Active:    true,
		PosLimit:  3,
		TrialDays: 30,
	}
}

// UnlimitedPos reports whether the plan allows any number of points of sale.
func (p SubscriptionPlan) UnlimitedPos() bool {
	return p.PosLimit == 0
}

// Feature is a named capability attached to a plan.
type Feature struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SubscriptionPricing is one priced interval of a plan. A pricing maps to a
// Stripe price.
type SubscriptionPricing struct {
	ID        int64           `json:"id"`
	UID       string          `json:"uid"`
	PlanID    int64           `json:"plan_id"`
	Interval  string          `json:"interval"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	StripeID  string          `json:"stripe_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewSubscriptionPricing returns a pricing with its documented defaults.
func NewSubscriptionPricing() SubscriptionPricing {
	return SubscriptionPricing{
		Interval: IntervalMonth,
		Currency: "eur",
	}
}

// Subscription ties a user to a plan for a billing period.
type Subscription struct {
	ID          int64     `json:"id"`
	UID         string    `json:"uid"`
	UserID      int64     `json:"user_id"`
	PlanID      int64     `json:"plan_id"`
	Interval    string    `json:"interval"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	RenewalDate time.Time `json:"renewal_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Plan *SubscriptionPlan `json:"plan,omitempty"`
}

// NewSubscription returns a subscription with its documented defaults.
func NewSubscription() Subscription {
	return Subscription{
		Interval: IntervalMonth,
		Status:   SubscriptionStatusPending,
	}
}
