package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is the persistence model for a point-of-sale payment method.
type PaymentMethod struct {
	ID                       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UID                      uuid.UUID `gorm:"type:uuid;uniqueIndex;default:gen_random_uuid()" json:"uid"`
	Name                     string    `gorm:"not null;size:255" json:"name"`
	Description              string    `json:"description"`
	PointOfSaleID            int64     `gorm:"not null;index" json:"point_of_sale_id"`
	IsActive                 bool      `gorm:"default:true" json:"is_active"`
	RequiresConfirmation     bool      `gorm:"default:false" json:"requires_confirmation"`
	ConfirmationInstructions string    `json:"confirmation_instructions"`
	CreatedAt                time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt                time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (PaymentMethod) TableName() string {
	return "payment_methods"
}
