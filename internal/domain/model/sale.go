package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the persistence model for a completed point-of-sale transaction.
type Sale struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UID           uuid.UUID       `gorm:"type:uuid;uniqueIndex;default:gen_random_uuid()" json:"uid"`
	PointOfSaleID int64           `gorm:"not null;index" json:"point_of_sale_id"`
	CustomerID    *int64          `gorm:"index" json:"customer_id,omitempty"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Currency      string          `gorm:"not null;size:10;default:'eur'" json:"currency"`
	CreatedAt     time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"default:now()" json:"updated_at"`

	// Relations
	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// TableName specifies the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is a single line of a sale.
type SaleItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	SaleID    int64           `gorm:"not null;index" json:"sale_id"`
	Label     string          `gorm:"not null;size:255" json:"label"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
}

// TableName specifies the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}
