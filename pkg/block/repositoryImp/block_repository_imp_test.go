package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fapagri/entities"
	"fapagri/pkg/block/repository"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Block{}))
	return db
}

func TestListByPlantationFilters(t *testing.T) {
	repo := New(testDB(t))

	require.NoError(t, repo.Create(&entities.Block{PlantationID: "p-1", Name: "A1"}))
	require.NoError(t, repo.Create(&entities.Block{PlantationID: "p-1", Name: "A2"}))
	require.NoError(t, repo.Create(&entities.Block{PlantationID: "p-2", Name: "B1"}))

	out, err := repo.ListByPlantation("p-1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, b := range out {
		assert.Equal(t, "p-1", b.PlantationID)
	}
}

func TestUpdatePartialKeepsUnsetFields(t *testing.T) {
	repo := New(testDB(t))

	area := 25.0
	year := 2018
	b := &entities.Block{PlantationID: "p-1", Name: "A1", AreaHa: &area, PlantingYear: &year}
	require.NoError(t, repo.Create(b))

	name := "A1-renamed"
	got, err := repo.UpdatePartial(b.ID, repository.BlockPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "A1-renamed", got.Name)
	require.NotNil(t, got.AreaHa)
	assert.Equal(t, 25.0, *got.AreaHa)
	require.NotNil(t, got.PlantingYear)
	assert.Equal(t, 2018, *got.PlantingYear)
	assert.Equal(t, "p-1", got.PlantationID)
}
