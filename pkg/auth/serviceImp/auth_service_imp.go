package serviceImp

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"fapagri/database"
	"fapagri/entities"
	svc "fapagri/pkg/auth/service"
	"fapagri/pkg/user/repository"
)

type service struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
}

func New(users repository.UserRepository, secret string, ttl time.Duration, logger *zap.Logger) svc.AuthService {
	return &service{users: users, secret: []byte(secret), ttl: ttl, logger: logger}
}

func (s *service) Login(username, password string) (string, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		// same answer as a wrong password; do not leak which part failed
		return "", svc.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		s.logger.Info("login rejected", zap.String("username", username))
		return "", svc.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   u.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

func (s *service) Register(in svc.RegisterInput) (*entities.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entities.RoleFieldWorker
	}
	u := &entities.User{
		Username:       in.Username,
		Email:          in.Email,
		HashedPassword: string(hash),
		FullName:       in.FullName,
		Role:           role,
		IsActive:       true,
	}
	if err := s.users.Create(u); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, svc.ErrConflict
		}
		return nil, err
	}
	return u, nil
}
