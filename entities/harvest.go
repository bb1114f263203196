package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HarvestRecord is one harvesting event on a block. BatchCode is assigned by
// the system at creation and never changes afterwards; it is the public
// traceability handle printed on packaging.
type HarvestRecord struct {
	ID                      string    `gorm:"primaryKey;size:36" json:"id"`
	BlockID                 string    `gorm:"size:36;index" json:"block_id"`
	HarvesterID             string    `gorm:"size:36;index" json:"harvester_id"`
	Date                    time.Time `gorm:"not null;index" json:"date"`
	TonnesFreshFruitBunches float64   `json:"tonnes_fresh_fruit_bunches"`
	BatchCode               string    `gorm:"size:100;uniqueIndex" json:"batch_code"`
	GeoLat                  *float64  `json:"geo_lat"`
	GeoLng                  *float64  `json:"geo_lng"`
	Notes                   string    `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *HarvestRecord) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
