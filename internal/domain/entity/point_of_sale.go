package entity

import "time"

// Point of sale types
const (
	PosTypeStore     = "store"
	PosTypeWarehouse = "warehouse"
	PosTypeOnline    = "online"
)

// PointOfSale is a physical or online location where sales happen.
type PointOfSale struct {
	ID              int64     `json:"id"`
	UID             string    `json:"uid"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	CompanyID       int64     `json:"company_id"`
	OpeningHours    string    `json:"opening_hours,omitempty"`
	ClosingHours    string    `json:"closing_hours,omitempty"`
	CollaboratorIDs []int64   `json:"collaborator_ids,omitempty"`
	IsActive        bool      `json:"is_active"`
	IsDefault       bool      `json:"is_default"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewPointOfSale returns a point of sale with its documented defaults.
func NewPointOfSale() PointOfSale {
	return PointOfSale{
		Type:     PosTypeStore,
		IsActive: true,
	}
}

func (p PointOfSale) IsStore() bool     { return p.Type == PosTypeStore }
func (p PointOfSale) IsWarehouse() bool { return p.Type == PosTypeWarehouse }
func (p PointOfSale) IsOnline() bool    { return p.Type == PosTypeOnline }
