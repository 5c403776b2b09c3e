package model

import (
	"time"

	"github.com/google/uuid"
)

// Invitation is the persistence model for a collaborator invitation.
// Status is one of PENDING, VALIDATED, EXPIRED.
type Invitation struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UID           uuid.UUID `gorm:"type:uuid;uniqueIndex;default:gen_random_uuid()" json:"uid"`
	Email         string    `gorm:"not null;size:255;index" json:"email"`
	PointOfSaleID int64     `gorm:"not null;index" json:"point_of_sale_id"`
	InvitedByID   int64     `gorm:"not null" json:"invited_by_id"`
	Status        string    `gorm:"not null;size:50;default:'PENDING'" json:"status"`
	Token         string    `gorm:"not null;uniqueIndex;size:64" json:"-"`
	ExpiresAt     time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt     time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Invitation) TableName() string {
	return "invitations"
}
