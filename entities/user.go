package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin       = "admin"
	RoleAgronomist  = "agronomist"
	RoleFieldWorker = "field_worker"
)

type User struct {
	ID             string `gorm:"primaryKey;size:36" json:"id"`
	Username       string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email          string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"size:255;not null" json:"-"`
	FullName       string `gorm:"size:100" json:"full_name"`
	Role           string `gorm:"size:20;default:field_worker" json:"role"` // admin|agronomist|field_worker
	IsActive       bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
