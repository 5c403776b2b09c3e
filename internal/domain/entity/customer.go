package entity

import "time"

// Customer links a user account to the billing provider. StripeID stays empty
// until the first billing interaction provisions a Stripe customer.
type Customer struct {
	ID        int64     `json:"id"`
	UID       string    `json:"uid"`
	UserID    int64     `json:"user_id"`
	StripeID  string    `json:"stripe_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCustomer returns a customer with its documented defaults.
func NewCustomer() Customer {
	return Customer{
		IsActive: true,
	}
}
