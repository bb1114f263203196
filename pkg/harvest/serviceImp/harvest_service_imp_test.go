package serviceImp

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fapagri/entities"
	blockRepoImp "fapagri/pkg/block/repositoryImp"
	employeeRepoImp "fapagri/pkg/employee/repositoryImp"
	"fapagri/pkg/harvest/repository"
	harvestRepoImp "fapagri/pkg/harvest/repositoryImp"
	svc "fapagri/pkg/harvest/service"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Plantation{}, &entities.Block{}, &entities.Employee{},
		&entities.HarvestRecord{},
	))
	return db
}

func testService(t *testing.T) (svc.HarvestService, *gorm.DB, *entities.Block, *entities.Employee) {
	t.Helper()
	db := testDB(t)

	block := &entities.Block{PlantationID: "p-1", Name: "Blok A1"}
	require.NoError(t, db.Create(block).Error)
	emp := &entities.Employee{Name: "Siti Rahayu", EmployeeCode: "EMP002", IsActive: true}
	require.NoError(t, db.Create(emp).Error)

	s := New(harvestRepoImp.New(db), blockRepoImp.New(db), employeeRepoImp.New(db), zap.NewNop())
	return s, db, block, emp
}

var batchCodeRe = regexp.MustCompile(`^LOT-(\d{8})-([0-9A-F]{8})$`)

func TestCreateGeneratesBatchCode(t *testing.T) {
	s, _, block, emp := testService(t)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	rec, err := s.Create(svc.CreateInput{
		BlockID: block.ID, HarvesterID: emp.ID, Date: date, TonnesFFB: 2.5,
	})
	require.NoError(t, err)

	m := batchCodeRe.FindStringSubmatch(rec.BatchCode)
	require.NotNil(t, m, "batch code %q does not match LOT-YYYYMMDD-XXXXXXXX", rec.BatchCode)
	assert.Equal(t, "20250315", m[1], "date part must encode the harvest date")
}

func TestBatchCodesPairwiseDistinct(t *testing.T) {
	s, _, block, emp := testService(t)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		rec, err := s.Create(svc.CreateInput{
			BlockID: block.ID, HarvesterID: emp.ID, Date: date, TonnesFFB: 1,
		})
		require.NoError(t, err)
		assert.False(t, seen[rec.BatchCode], "duplicate batch code %s", rec.BatchCode)
		seen[rec.BatchCode] = true
	}
	assert.Len(t, seen, 25)
}

func TestTraceRoundtrip(t *testing.T) {
	s, _, block, emp := testService(t)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	created, err := s.Create(svc.CreateInput{
		BlockID: block.ID, HarvesterID: emp.ID, Date: date, TonnesFFB: 3.25,
		Notes: "cuaca cerah",
	})
	require.NoError(t, err)

	got, err := s.Trace(created.BatchCode)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.BatchCode, got.BatchCode)
	assert.Equal(t, 3.25, got.TonnesFreshFruitBunches)
	assert.Equal(t, "cuaca cerah", got.Notes)
}

func TestTraceUnknownCode(t *testing.T) {
	s, _, _, _ := testService(t)

	_, err := s.Trace("LOT-20250101-DEADBEEF")
	assert.ErrorIs(t, err, svc.ErrBatchNotFound)
}

func TestCreateMissingReferences(t *testing.T) {
	s, _, block, emp := testService(t)
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	_, err := s.Create(svc.CreateInput{
		BlockID: "no-such-block", HarvesterID: emp.ID, Date: date, TonnesFFB: 1,
	})
	assert.ErrorIs(t, err, svc.ErrBlockNotFound)

	_, err = s.Create(svc.CreateInput{
		BlockID: block.ID, HarvesterID: "no-such-employee", Date: date, TonnesFFB: 1,
	})
	assert.ErrorIs(t, err, svc.ErrHarvesterNotFound)
}

// collidingRepo fails the first n inserts with a unique-index error, as if
// the generated batch code already existed, and records every attempted code.
type collidingRepo struct {
	repository.HarvestRepository
	failures int
	codes    []string
}

func (r *collidingRepo) Create(rec *entities.HarvestRecord) error {
	r.codes = append(r.codes, rec.BatchCode)
	if r.failures > 0 {
		r.failures--
		return errors.New("UNIQUE constraint failed: harvest_records.batch_code")
	}
	return r.HarvestRepository.Create(rec)
}

func TestCreateRegeneratesOnCollision(t *testing.T) {
	db := testDB(t)
	block := &entities.Block{PlantationID: "p-1", Name: "Blok A1"}
	require.NoError(t, db.Create(block).Error)
	emp := &entities.Employee{Name: "x", EmployeeCode: "EMP001", IsActive: true}
	require.NoError(t, db.Create(emp).Error)

	repo := &collidingRepo{HarvestRepository: harvestRepoImp.New(db), failures: 1}
	s := New(repo, blockRepoImp.New(db), employeeRepoImp.New(db), zap.NewNop())

	rec, err := s.Create(svc.CreateInput{
		BlockID: block.ID, HarvesterID: emp.ID,
		Date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), TonnesFFB: 1,
	})
	require.NoError(t, err)
	require.Len(t, repo.codes, 2, "one collision must trigger exactly one regeneration")
	assert.NotEqual(t, repo.codes[0], repo.codes[1], "the regenerated code must differ")
	assert.Equal(t, repo.codes[1], rec.BatchCode)
}

func TestCreateGivesUpAfterBoundedRetries(t *testing.T) {
	db := testDB(t)
	block := &entities.Block{PlantationID: "p-1", Name: "Blok A1"}
	require.NoError(t, db.Create(block).Error)
	emp := &entities.Employee{Name: "x", EmployeeCode: "EMP001", IsActive: true}
	require.NoError(t, db.Create(emp).Error)

	repo := &collidingRepo{HarvestRepository: harvestRepoImp.New(db), failures: batchAttempts + 1}
	s := New(repo, blockRepoImp.New(db), employeeRepoImp.New(db), zap.NewNop())

	_, err := s.Create(svc.CreateInput{
		BlockID: block.ID, HarvesterID: emp.ID,
		Date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), TonnesFFB: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate batch code")
	assert.Len(t, repo.codes, batchAttempts, "attempts must stop at the bound")
}

func TestBatchCodeImmutableOnStore(t *testing.T) {
	s, db, block, emp := testService(t)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	created, err := s.Create(svc.CreateInput{
		BlockID: block.ID, HarvesterID: emp.ID, Date: date, TonnesFFB: 1,
	})
	require.NoError(t, err)

	// a second row with the same code must be rejected by the unique index
	dup := &entities.HarvestRecord{
		BlockID: block.ID, HarvesterID: emp.ID, Date: date,
		TonnesFreshFruitBunches: 1, BatchCode: created.BatchCode,
	}
	err = db.Create(dup).Error
	require.Error(t, err)
}
