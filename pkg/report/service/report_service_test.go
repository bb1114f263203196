package service

import (
	"bytes"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"fapagri/entities"
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

func TestHarvestWorkbook(t *testing.T) {
	db := testDB(t)

	p := &entities.Plantation{Name: "Kebun Sawit Utama"}
	require.NoError(t, db.Create(p).Error)
	b := &entities.Block{PlantationID: p.ID, Name: "Blok A1"}
	require.NoError(t, db.Create(b).Error)
	e := &entities.Employee{Name: "Siti Rahayu", EmployeeCode: "EMP002", IsActive: true}
	require.NoError(t, db.Create(e).Error)

	dates := []time.Time{
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		require.NoError(t, db.Create(&entities.HarvestRecord{
			BlockID: b.ID, HarvesterID: e.ID, Date: d,
			TonnesFreshFruitBunches: 2.5,
			BatchCode:               "LOT-" + d.Format("20060102") + "-AAAAAAA" + string(rune('0'+i)),
		}).Error)
	}

	data, err := New(db).HarvestWorkbook(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Harvests")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two records")
	assert.Equal(t, "Batch Code", rows[0][0])
	assert.Equal(t, "LOT-20250601-AAAAAAA0", rows[1][0])
	assert.Equal(t, "Blok A1", rows[1][2])
	assert.Equal(t, "Siti Rahayu", rows[1][4])
}

func TestHarvestWorkbookDateFilter(t *testing.T) {
	db := testDB(t)

	b := &entities.Block{PlantationID: "p-1", Name: "Blok A1"}
	require.NoError(t, db.Create(b).Error)
	e := &entities.Employee{Name: "x", EmployeeCode: "EMP001", IsActive: true}
	require.NoError(t, db.Create(e).Error)

	for i, d := range []time.Time{
		time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	} {
		require.NoError(t, db.Create(&entities.HarvestRecord{
			BlockID: b.ID, HarvesterID: e.ID, Date: d,
			TonnesFreshFruitBunches: 1,
			BatchCode:               "LOT-" + d.Format("20060102") + "-BBBBBBB" + string(rune('0'+i)),
		}).Error)
	}

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	data, err := New(db).HarvestWorkbook(&from, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Harvests")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "LOT-20250610-BBBBBBB1", rows[1][0])
}
