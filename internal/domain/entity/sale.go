package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a completed transaction at a point of sale.
type Sale struct {
	ID            int64           `json:"id"`
	UID           string          `json:"uid"`
	PointOfSaleID int64           `json:"point_of_sale_id"`
	CustomerID    int64           `json:"customer_id,omitempty"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	Items         []SaleItem      `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SaleItem is a single line of a sale.
type SaleItem struct {
	ID        int64           `json:"id"`
	SaleID    int64           `json:"sale_id"`
	Label     string          `json:"label"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// NewSale returns a sale with its documented defaults.
func NewSale() Sale {
	return Sale{
		Currency: "eur",
	}
}
