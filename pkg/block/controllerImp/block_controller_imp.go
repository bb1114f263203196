package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fapagri/entities"
	"fapagri/pkg/block/controller"
	"fapagri/pkg/block/repository"
	plantationRepo "fapagri/pkg/plantation/repository"
)

type blockCtrl struct {
	repo        repository.BlockRepository
	plantations plantationRepo.PlantationRepository
}

func New(repo repository.BlockRepository, plantations plantationRepo.PlantationRepository) controller.BlockController {
	return &blockCtrl{repo: repo, plantations: plantations}
}

type createReq struct {
	PlantationID string   `json:"plantation_id"`
	Name         string   `json:"name"`
	AreaHa       *float64 `json:"area_ha"`
	PlantingYear *int     `json:"planting_year"`
}

func (h *blockCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.PlantationID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "plantation_id is required"})
	}
	// advisory existence check; not atomic with the insert
	if _, err := h.plantations.FindByID(req.PlantationID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Plantation not found"})
	}
	b := &entities.Block{
		PlantationID: req.PlantationID,
		Name:         req.Name,
		AreaHa:       req.AreaHa,
		PlantingYear: req.PlantingYear,
	}
	if err := h.repo.Create(b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *blockCtrl) List(c echo.Context) error {
	if pid := c.QueryParam("plantation_id"); pid != "" {
		out, err := h.repo.ListByPlantation(pid)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	skip, limit := pageParams(c)
	out, err := h.repo.List(skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *blockCtrl) Get(c echo.Context) error {
	b, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Block not found"})
	}
	return c.JSON(http.StatusOK, b)
}

func (h *blockCtrl) Update(c echo.Context) error {
	var patch repository.BlockPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if patch.PlantationID != nil {
		if _, err := h.plantations.FindByID(*patch.PlantationID); err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Plantation not found"})
		}
	}
	b, err := h.repo.UpdatePartial(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Block not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, b)
}

func (h *blockCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Block not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Block deleted successfully"})
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
