package repository

import "fapagri/entities"

type BlockPatch struct {
	PlantationID *string  `json:"plantation_id"`
	Name         *string  `json:"name"`
	AreaHa       *float64 `json:"area_ha"`
	PlantingYear *int     `json:"planting_year"`
}

type BlockRepository interface {
	Create(b *entities.Block) error
	List(skip, limit int) ([]entities.Block, error)
	ListByPlantation(plantationID string) ([]entities.Block, error)
	FindByID(id string) (*entities.Block, error)
	UpdatePartial(id string, patch BlockPatch) (*entities.Block, error)
	Delete(id string) error
}
