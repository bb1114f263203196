package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fapagri/pkg/harvest/controller"
	"fapagri/pkg/harvest/repository"
	svc "fapagri/pkg/harvest/service"
)

type harvestCtrl struct {
	svc  svc.HarvestService
	repo repository.HarvestRepository
	loc  *time.Location
}

// loc is the calendar the dashboard aggregates in; date-only input is parsed
// there so a record dated "today" lands in today's window.
func New(s svc.HarvestService, repo repository.HarvestRepository, loc *time.Location) controller.HarvestController {
	if loc == nil {
		loc = time.Local
	}
	return &harvestCtrl{svc: s, repo: repo, loc: loc}
}

type createReq struct {
	BlockID     string   `json:"block_id"`
	HarvesterID string   `json:"harvester_id"`
	Date        string   `json:"date"`
	TonnesFFB   *float64 `json:"tonnes_fresh_fruit_bunches"`
	GeoLat      *float64 `json:"geo_lat"`
	GeoLng      *float64 `json:"geo_lng"`
	Notes       string   `json:"notes"`
}

func (h *harvestCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.BlockID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "block_id is required"})
	}
	if req.HarvesterID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "harvester_id is required"})
	}
	if req.TonnesFFB == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tonnes_fresh_fruit_bunches is required"})
	}
	date, err := h.parseDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD or RFC3339"})
	}
	rec, err := h.svc.Create(svc.CreateInput{
		BlockID:     req.BlockID,
		HarvesterID: req.HarvesterID,
		Date:        date,
		TonnesFFB:   *req.TonnesFFB,
		GeoLat:      req.GeoLat,
		GeoLng:      req.GeoLng,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, svc.ErrBlockNotFound) || errors.Is(err, svc.ErrHarvesterNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *harvestCtrl) List(c echo.Context) error {
	skip, limit := pageParams(c)
	out, err := h.repo.List(skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *harvestCtrl) Get(c echo.Context) error {
	rec, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Harvest record not found"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *harvestCtrl) ListByBlock(c echo.Context) error {
	out, err := h.repo.ListByBlock(c.Param("block_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Trace is the one public read path: batch code -> full record.
func (h *harvestCtrl) Trace(c echo.Context) error {
	rec, err := h.svc.Trace(c.Param("batch_code"))
	if err != nil {
		if errors.Is(err, svc.ErrBatchNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Batch not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *harvestCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Harvest record not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Harvest record deleted successfully"})
}

func (h *harvestCtrl) parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, h.loc)
}

func pageParams(c echo.Context) (int, int) {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	return skip, limit
}
