package repositoryImp

import (
	"gorm.io/gorm"

	"fapagri/entities"
	"fapagri/pkg/plantation/repository"
)

type plantationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantationRepository { return &plantationRepo{db} }

func (r *plantationRepo) Create(p *entities.Plantation) error { return r.db.Create(p).Error }

func (r *plantationRepo) List(skip, limit int) ([]entities.Plantation, error) {
	var out []entities.Plantation
	if err := r.db.Offset(skip).Limit(limit).Order("created_at asc, id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plantationRepo) FindByID(id string) (*entities.Plantation, error) {
	var p entities.Plantation
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantationRepo) UpdatePartial(id string, patch repository.PlantationPatch) (*entities.Plantation, error) {
	p, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.LocationLat != nil {
		p.LocationLat = patch.LocationLat
	}
	if patch.LocationLng != nil {
		p.LocationLng = patch.LocationLng
	}
	if patch.AreaHa != nil {
		p.AreaHa = patch.AreaHa
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if err := r.db.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the plantation row only. Blocks that still reference it are
// left in place so their harvest history survives; callers get no cascade.
func (r *plantationRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Plantation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
