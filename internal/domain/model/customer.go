package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer maps a user to the billing provider. The unique index on user_id
// enforces one customer per user.
type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UID       uuid.UUID `gorm:"type:uuid;uniqueIndex;default:gen_random_uuid()" json:"uid"`
	UserID    int64     `gorm:"not null;uniqueIndex" json:"user_id"`
	StripeID  string    `gorm:"size:255;index" json:"stripe_id"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Customer) TableName() string {
	return "customers"
}
