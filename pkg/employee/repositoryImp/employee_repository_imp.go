package repositoryImp

import (
	"gorm.io/gorm"

	"fapagri/entities"
	"fapagri/pkg/employee/repository"
)

type employeeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.EmployeeRepository { return &employeeRepo{db} }

func (r *employeeRepo) Create(e *entities.Employee) error { return r.db.Create(e).Error }

func (r *employeeRepo) List(skip, limit int) ([]entities.Employee, error) {
	var out []entities.Employee
	if err := r.db.Offset(skip).Limit(limit).Order("name asc, id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *employeeRepo) FindByID(id string) (*entities.Employee, error) {
	var e entities.Employee
	if err := r.db.Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) UpdatePartial(id string, patch repository.EmployeePatch) (*entities.Employee, error) {
	e, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.EmployeeCode != nil {
		e.EmployeeCode = *patch.EmployeeCode
	}
	if patch.Position != nil {
		e.Position = *patch.Position
	}
	if patch.Phone != nil {
		e.Phone = *patch.Phone
	}
	if patch.IsActive != nil {
		e.IsActive = *patch.IsActive
	}
	if err := r.db.Save(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
