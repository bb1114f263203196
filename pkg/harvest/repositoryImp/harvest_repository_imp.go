package repositoryImp

import (
	"gorm.io/gorm"

	"fapagri/entities"
	"fapagri/pkg/harvest/repository"
)

type harvestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HarvestRepository { return &harvestRepo{db} }

func (r *harvestRepo) Create(h *entities.HarvestRecord) error { return r.db.Create(h).Error }

func (r *harvestRepo) List(skip, limit int) ([]entities.HarvestRecord, error) {
	var out []entities.HarvestRecord
	if err := r.db.Offset(skip).Limit(limit).Order("date desc, id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *harvestRepo) ListByBlock(blockID string) ([]entities.HarvestRecord, error) {
	var out []entities.HarvestRecord
	if err := r.db.Where("block_id = ?", blockID).Order("date desc, id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *harvestRepo) FindByID(id string) (*entities.HarvestRecord, error) {
	var h entities.HarvestRecord
	if err := r.db.Where("id = ?", id).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *harvestRepo) FindByBatchCode(code string) (*entities.HarvestRecord, error) {
	var h entities.HarvestRecord
	if err := r.db.Where("batch_code = ?", code).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *harvestRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.HarvestRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
