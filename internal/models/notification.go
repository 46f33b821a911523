package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID string  `gorm:"size:36;not null;index" json:"user_id"`
	RideID *string `gorm:"size:36" json:"ride_id"`

	Type    string `gorm:"size:50;not null" json:"type"`
	Message string `gorm:"type:text" json:"message"`
	Read    bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
