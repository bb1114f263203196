package repository

import "fapagri/entities"

type HarvestRepository interface {
	Create(h *entities.HarvestRecord) error
	List(skip, limit int) ([]entities.HarvestRecord, error)
	ListByBlock(blockID string) ([]entities.HarvestRecord, error)
	FindByID(id string) (*entities.HarvestRecord, error)
	FindByBatchCode(code string) (*entities.HarvestRecord, error)
	Delete(id string) error
}
