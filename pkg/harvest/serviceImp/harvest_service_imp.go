package serviceImp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fapagri/database"
	"fapagri/entities"
	blockRepo "fapagri/pkg/block/repository"
	employeeRepo "fapagri/pkg/employee/repository"
	"fapagri/pkg/harvest/repository"
	svc "fapagri/pkg/harvest/service"
)

// batchAttempts bounds regeneration when the unique index on batch_code
// rejects an insert. The suffix carries ~32 bits of entropy, so a second
// collision in a row is already vanishingly unlikely.
const batchAttempts = 3

type service struct {
	repo      repository.HarvestRepository
	blocks    blockRepo.BlockRepository
	employees employeeRepo.EmployeeRepository
	logger    *zap.Logger
}

func New(repo repository.HarvestRepository, blocks blockRepo.BlockRepository, employees employeeRepo.EmployeeRepository, logger *zap.Logger) svc.HarvestService {
	return &service{repo: repo, blocks: blocks, employees: employees, logger: logger}
}

func (s *service) Create(in svc.CreateInput) (*entities.HarvestRecord, error) {
	// advisory existence checks; not atomic with the insert
	if _, err := s.blocks.FindByID(in.BlockID); err != nil {
		return nil, svc.ErrBlockNotFound
	}
	if _, err := s.employees.FindByID(in.HarvesterID); err != nil {
		return nil, svc.ErrHarvesterNotFound
	}

	var lastErr error
	for i := 0; i < batchAttempts; i++ {
		rec := &entities.HarvestRecord{
			BlockID:                 in.BlockID,
			HarvesterID:             in.HarvesterID,
			Date:                    in.Date,
			TonnesFreshFruitBunches: in.TonnesFFB,
			BatchCode:               newBatchCode(in.Date),
			GeoLat:                  in.GeoLat,
			GeoLng:                  in.GeoLng,
			Notes:                   in.Notes,
		}
		err := s.repo.Create(rec)
		if err == nil {
			return rec, nil
		}
		if !database.IsUniqueViolation(err) {
			return nil, err
		}
		s.logger.Warn("batch code collision, regenerating",
			zap.String("batch_code", rec.BatchCode), zap.Int("attempt", i+1))
		lastErr = err
	}
	return nil, fmt.Errorf("generate batch code: %w", lastErr)
}

func (s *service) Trace(batchCode string) (*entities.HarvestRecord, error) {
	rec, err := s.repo.FindByBatchCode(batchCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svc.ErrBatchNotFound
		}
		return nil, err
	}
	return rec, nil
}

// newBatchCode builds LOT-YYYYMMDD-XXXXXXXX: the recorded harvest date plus
// the first 8 hex chars of a random uuid, uppercased.
func newBatchCode(date time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("LOT-%s-%s", date.Format("20060102"), suffix)
}
