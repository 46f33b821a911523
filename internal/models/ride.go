package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ride struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID string `gorm:"size:36;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// DriverID fica nulo enquanto a corrida está pendente ou cancelada
	DriverID *string `gorm:"size:36" json:"driver_id"`
	Driver   *User   `gorm:"foreignKey:DriverID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"driver,omitempty"`

	CarID *string `gorm:"size:36" json:"car_id"`
	Car   *Car    `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"car,omitempty"`

	Origin      string `gorm:"size:255;not null" json:"origin"`
	Destination string `gorm:"size:255;not null" json:"destination"`

	ScheduledTime time.Time  `gorm:"not null;index" json:"scheduled_time"`
	EndTime       *time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'pendente'" json:"status"`

	// Notes recebe a observação na conclusão ou o motivo no cancelamento
	Notes string `gorm:"size:255" json:"notes"`

	// Version protege contra lost updates em transições concorrentes
	Version int `gorm:"default:0" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Ride) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
