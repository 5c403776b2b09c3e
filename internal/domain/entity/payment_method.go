package entity

import "time"

// PaymentMethod is a payment option offered at a point of sale, e.g. cash,
// card, or bank transfer.
type PaymentMethod struct {
	ID                       int64     `json:"id"`
	UID                      string    `json:"uid"`
	Name                     string    `json:"name"`
	Description              string    `json:"description,omitempty"`
	PointOfSaleID            int64     `json:"point_of_sale_id"`
	IsActive                 bool      `json:"is_active"`
	RequiresConfirmation     bool      `json:"requires_confirmation"`
	ConfirmationInstructions string    `json:"confirmation_instructions,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// NewPaymentMethod returns a payment method with its documented defaults:
// active, not yet persisted (ID 0), no confirmation required.
func NewPaymentMethod() PaymentMethod {
	return PaymentMethod{
		IsActive:             true,
		RequiresConfirmation: false,
	}
}
