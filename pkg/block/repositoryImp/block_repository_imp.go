package repositoryImp

import (
	"gorm.io/gorm"

	"fapagri/entities"
	"fapagri/pkg/block/repository"
)

type blockRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BlockRepository { return &blockRepo{db} }

func (r *blockRepo) Create(b *entities.Block) error { return r.db.Create(b).Error }

func (r *blockRepo) List(skip, limit int) ([]entities.Block, error) {
	var out []entities.Block
	if err := r.db.Offset(skip).Limit(limit).Order("created_at asc, id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *blockRepo) ListByPlantation(plantationID string) ([]entities.Block, error) {
	var out []entities.Block
	if err := r.db.Where("plantation_id = ?", plantationID).Order("name asc, id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *blockRepo) FindByID(id string) (*entities.Block, error) {
	var b entities.Block
	if err := r.db.Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blockRepo) UpdatePartial(id string, patch repository.BlockPatch) (*entities.Block, error) {
	b, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if patch.PlantationID != nil {
		b.PlantationID = *patch.PlantationID
	}
	if patch.Name != nil {
		b.Name = *patch.Name
	}
	if patch.AreaHa != nil {
		b.AreaHa = patch.AreaHa
	}
	if patch.PlantingYear != nil {
		b.PlantingYear = patch.PlantingYear
	}
	if err := r.db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (r *blockRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Block{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
