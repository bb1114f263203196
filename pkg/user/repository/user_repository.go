package repository

import "fapagri/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByUsername(username string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
}
