package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionStatus represents the status of a subscription
type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Scan implements sql.Scanner interface
func (s *SubscriptionStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = SubscriptionStatus(v)
	case []byte:
		*s = SubscriptionStatus(v)
	default:
		*s = SubscriptionStatusPending
	}
	return nil
}

// Value implements driver.Valuer interface
func (s SubscriptionStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// SubscriptionPlan is the persistence model for a sellable subscription tier.
// A plan maps to a Stripe product.
type SubscriptionPlan struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UID         uuid.UUID `gorm:"type:uuid;uniqueIndex;default:gen_random_uuid()" json:"uid"`
	Name        string    `gorm:"unique;not null;size:255" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	Active      bool      `gorm:"default:true" json:"active"`
	GroupName   string    `gorm:"size:150" json:"group_name"`
	StripeID    string    `gorm:"size:120" json:"stripe_id"`
	PosLimit    int       `gorm:"default:3" json:"pos_limit"`
	IsFreeTrial bool      `gorm:"default:false" json:"is_free_trial"`
	TrialDays   int       `gorm:"default:30" json:"trial_days"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`

	// Relations
	Features []Feature             `gorm:"many2many:plan_features" json:"features,omitempty"`
	Pricings []SubscriptionPricing `gorm:"foreignKey:PlanID" json:"pricings,omitempty"`
}

// TableName specifies the table name for GORM
func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

// Feature is a named capability granted by a plan.
type Feature struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Feature) TableName() string {
	return "features"
}

// SubscriptionPricing is one priced billing interval of a plan. A pricing
// maps to a Stripe price.
type SubscriptionPricing struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UID       uuid.UUID       `gorm:"type:uuid;uniqueIndex;default:gen_random_uuid()" json:"uid"`
	PlanID    int64           `gorm:"not null;index" json:"plan_id"`
	Interval  string          `gorm:"not null;size:100;default:'month'" json:"interval"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Currency  string          `gorm:"not null;size:10;default:'eur'" json:"currency"`
	StripeID  string          `gorm:"size:120" json:"stripe_id"`
	IsActive  bool            `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time       `gorm:"default:now()" json:"updated_at"`

	// Relations
	Plan *SubscriptionPlan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

// TableName specifies the table name for GORM
func (SubscriptionPricing) TableName() string {
	return "subscription_pricings"
}

// Subscription ties a user to a plan for a billing period. The unique index
// on user_id keeps one subscription per user.
type Subscription struct {
	ID          int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	UID         uuid.UUID          `gorm:"type:uuid;uniqueIndex;default:gen_random_uuid()" json:"uid"`
	UserID      int64              `gorm:"not null;uniqueIndex" json:"user_id"`
	PlanID      *int64             `gorm:"index" json:"plan_id,omitempty"`
	Interval    string             `gorm:"not null;size:100;default:'month'" json:"interval"`
	StartDate   time.Time          `gorm:"not null" json:"start_date"`
	EndDate     time.Time          `gorm:"not null" json:"end_date"`
	RenewalDate time.Time          `gorm:"not null" json:"renewal_date"`
	Status      SubscriptionStatus `gorm:"type:subscription_status;not null;default:'pending'" json:"status"`
	CreatedAt   time.Time          `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"default:now()" json:"updated_at"`

	// Relations
	Plan *SubscriptionPlan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

// TableName specifies the table name for GORM
func (Subscription) TableName() string {
	return "subscriptions"
}
