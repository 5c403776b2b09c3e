package model

import (
	"time"

	"github.com/google/uuid"
)

// PointOfSale is the persistence model for a point of sale.
type PointOfSale struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UID          uuid.UUID `gorm:"type:uuid;uniqueIndex;default:gen_random_uuid()" json:"uid"`
	Name         string    `gorm:"not null;size:255" json:"name"`
	Type         string    `gorm:"not null;size:50;default:'store'" json:"type"`
	CompanyID    int64     `gorm:"index" json:"company_id"`
	OpeningHours string    `gorm:"size:100" json:"opening_hours"`
	ClosingHours string    `gorm:"size:100" json:"closing_hours"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	IsDefault    bool      `gorm:"default:false" json:"is_default"`
	CreatedAt    time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:now()" json:"updated_at"`

	// Relations
	PaymentMethods []PaymentMethod `gorm:"foreignKey:PointOfSaleID" json:"payment_methods,omitempty"`
	Collaborators  []Collaborator  `gorm:"foreignKey:PointOfSaleID" json:"collaborators,omitempty"`
}

// TableName specifies the table name for GORM
func (PointOfSale) TableName() string {
	return "points_of_sale"
}

// Collaborator links a user to a point of sale they may operate.
type Collaborator struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PointOfSaleID int64     `gorm:"not null;index;uniqueIndex:idx_pos_user" json:"point_of_sale_id"`
	UserID        int64     `gorm:"not null;index;uniqueIndex:idx_pos_user" json:"user_id"`
	CreatedAt     time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Collaborator) TableName() string {
	return "pos_collaborators"
}
