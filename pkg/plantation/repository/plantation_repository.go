package repository

import "fapagri/entities"

type PlantationPatch struct {
	Name        *string  `json:"name"`
	LocationLat *float64 `json:"location_lat"`
	LocationLng *float64 `json:"location_lng"`
	AreaHa      *float64 `json:"area_ha"`
	Address     *string  `json:"address"`
}

type PlantationRepository interface {
	Create(p *entities.Plantation) error
	List(skip, limit int) ([]entities.Plantation, error)
	FindByID(id string) (*entities.Plantation, error)
	UpdatePartial(id string, patch PlantationPatch) (*entities.Plantation, error)
	Delete(id string) error
}
