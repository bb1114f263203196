package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fapagri/entities"
	"fapagri/pkg/plantation/controller"
	"fapagri/pkg/plantation/repository"
)

type plantationCtrl struct{ repo repository.PlantationRepository }

func New(repo repository.PlantationRepository) controller.PlantationController {
	return &plantationCtrl{repo}
}

type createReq struct {
	Name        string   `json:"name"`
	LocationLat *float64 `json:"location_lat"`
	LocationLng *float64 `json:"location_lng"`
	AreaHa      *float64 `json:"area_ha"`
	Address     string   `json:"address"`
}

func (h *plantationCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	p := &entities.Plantation{
		Name:        req.Name,
		LocationLat: req.LocationLat,
		LocationLng: req.LocationLng,
		AreaHa:      req.AreaHa,
		Address:     req.Address,
	}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *plantationCtrl) List(c echo.Context) error {
	skip, limit := pageParams(c)
	out, err := h.repo.List(skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *plantationCtrl) Get(c echo.Context) error {
	p, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Plantation not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *plantationCtrl) Update(c echo.Context) error {
	var patch repository.PlantationPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	p, err := h.repo.UpdatePartial(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Plantation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *plantationCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Plantation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Plantation deleted successfully"})
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
