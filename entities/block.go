package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Block struct {
	ID           string   `gorm:"primaryKey;size:36" json:"id"`
	PlantationID string   `gorm:"size:36;index" json:"plantation_id"`
	Name         string   `gorm:"size:100;not null" json:"name"`
	AreaHa       *float64 `json:"area_ha"`
	PlantingYear *int     `json:"planting_year"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Block) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
