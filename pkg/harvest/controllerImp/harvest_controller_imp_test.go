package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fapagri/entities"
	blockRepoImp "fapagri/pkg/block/repositoryImp"
	employeeRepoImp "fapagri/pkg/employee/repositoryImp"
	"fapagri/pkg/harvest/controller"
	harvestRepoImp "fapagri/pkg/harvest/repositoryImp"
	harvestSvcImp "fapagri/pkg/harvest/serviceImp"
)

func setup(t *testing.T) (controller.HarvestController, *entities.Block, *entities.Employee) {
	return setupInZone(t, time.UTC)
}

func setupInZone(t *testing.T, loc *time.Location) (controller.HarvestController, *entities.Block, *entities.Employee) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Plantation{}, &entities.Block{}, &entities.Employee{},
		&entities.HarvestRecord{},
	))

	block := &entities.Block{PlantationID: "p-1", Name: "Blok A1"}
	require.NoError(t, db.Create(block).Error)
	emp := &entities.Employee{Name: "Siti Rahayu", EmployeeCode: "EMP002", IsActive: true}
	require.NoError(t, db.Create(emp).Error)

	repo := harvestRepoImp.New(db)
	s := harvestSvcImp.New(repo, blockRepoImp.New(db), employeeRepoImp.New(db), zap.NewNop())
	return New(s, repo, loc), block, emp
}

func TestCreateThenTrace(t *testing.T) {
	h, block, emp := setup(t)
	e := echo.New()

	body := `{"block_id":"` + block.ID + `","harvester_id":"` + emp.ID +
		`","date":"2025-03-15","tonnes_fresh_fruit_bunches":2.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/harvests", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Create(e.NewContext(req, rec)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created entities.HarvestRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.BatchCode)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("batch_code")
	c.SetParamValues(created.BatchCode)
	require.NoError(t, h.Trace(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var traced entities.HarvestRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &traced))
	assert.Equal(t, created.ID, traced.ID)
	assert.Equal(t, created.BatchCode, traced.BatchCode)
	assert.Equal(t, 2.5, traced.TonnesFreshFruitBunches)
}

func TestTraceUnknown(t *testing.T) {
	h, _, _ := setup(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("batch_code")
	c.SetParamValues("LOT-20250101-DEADBEEF")
	require.NoError(t, h.Trace(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Batch not found")
}

func TestCreateMissingBlockNames(t *testing.T) {
	h, _, emp := setup(t)
	e := echo.New()

	body := `{"block_id":"no-such-block","harvester_id":"` + emp.ID +
		`","date":"2025-03-15","tonnes_fresh_fruit_bunches":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/harvests", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Create(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Block not found")
}

func TestCreateParsesDateInConfiguredZone(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	h, block, emp := setupInZone(t, wib)
	e := echo.New()

	body := `{"block_id":"` + block.ID + `","harvester_id":"` + emp.ID +
		`","date":"2025-03-15","tonnes_fresh_fruit_bunches":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/harvests", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Create(e.NewContext(req, rec)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created entities.HarvestRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	// midnight in the configured zone, not the process zone
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, wib)
	assert.True(t, created.Date.Equal(want), "got %s, want %s", created.Date, want)
}

func TestCreateMissingTonnes(t *testing.T) {
	h, block, emp := setup(t)
	e := echo.New()

	body := `{"block_id":"` + block.ID + `","harvester_id":"` + emp.ID + `","date":"2025-03-15"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/harvests", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Create(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
