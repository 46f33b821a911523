package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CarStatusActive      = "ativo"
	CarStatusInactive    = "inativo"
	CarStatusMaintenance = "manutencao"
)

// Categorias de frota oferecidas pela empresa
var CarCategories = []string{"vans", "suvs", "blindados", "executivo"}

type Car struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Placa     string `gorm:"size:10;uniqueIndex;not null" json:"placa"`
	Modelo    string `gorm:"size:100;not null" json:"modelo"`
	Categoria string `gorm:"size:20;not null" json:"categoria"`
	Ano       int    `json:"ano"`

	Status string `gorm:"size:20;default:'ativo'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
