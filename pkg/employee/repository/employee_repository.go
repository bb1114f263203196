package repository

import "fapagri/entities"

type EmployeePatch struct {
	Name         *string `json:"name"`
	EmployeeCode *string `json:"employee_code"`
	Position     *string `json:"position"`
	Phone        *string `json:"phone"`
	IsActive     *bool   `json:"is_active"`
}

type EmployeeRepository interface {
	Create(e *entities.Employee) error
	List(skip, limit int) ([]entities.Employee, error)
	FindByID(id string) (*entities.Employee, error)
	UpdatePartial(id string, patch EmployeePatch) (*entities.Employee, error)
	Delete(id string) error
}
