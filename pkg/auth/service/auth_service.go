package service

import (
	"errors"

	"fapagri/entities"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrConflict           = errors.New("username or email already registered")
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     string
}

type AuthService interface {
	// Login verifies the password and returns a signed bearer token.
	Login(username, password string) (string, error)
	Register(in RegisterInput) (*entities.User, error)
}
