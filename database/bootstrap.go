// database/bootstrap.go
package database

import (
	"errors"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"fapagri/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Plantation{},
		&entities.Block{},
		&entities.Employee{},
		&entities.HarvestRecord{},
		&entities.User{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// IsUniqueViolation reports whether err comes from a unique index being hit
// (batch_code, employee_code, username, email). Checks both gorm's translated
// error and the raw sqlite message, since translation depends on the driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
