package entity

import "time"

// Invitation statuses
const (
	InvitationStatusPending   = "PENDING"
	InvitationStatusValidated = "VALIDATED"
	InvitationStatusExpired   = "EXPIRED"
)

// Invitation is a pending offer for someone to join a point of sale as a
// collaborator.
type Invitation struct {
	ID            int64     `json:"id"`
	UID           string    `json:"uid"`
	Email         string    `json:"email"`
	PointOfSaleID int64     `json:"point_of_sale_id"`
	InvitedByID   int64     `json:"invited_by_id"`
	Status        string    `json:"status"`
	Token         string    `json:"-"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewInvitation returns an invitation with its documented defaults.
func NewInvitation() Invitation {
	return Invitation{
		Status: InvitationStatusPending,
	}
}
