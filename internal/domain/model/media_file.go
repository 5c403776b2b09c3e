package model

import (
	"time"

	"github.com/google/uuid"
)

// MediaFile records an object uploaded to the media storage backend.
type MediaFile struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UID         uuid.UUID `gorm:"type:uuid;uniqueIndex;default:gen_random_uuid()" json:"uid"`
	Key         string    `gorm:"not null;uniqueIndex;size:512" json:"key"`
	FileName    string    `gorm:"not null;size:255" json:"file_name"`
	ContentType string    `gorm:"size:255" json:"content_type"`
	Size        int64     `json:"size"`
	OwnerID     int64     `gorm:"index" json:"owner_id"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (MediaFile) TableName() string {
	return "media_files"
}
