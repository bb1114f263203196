package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	svc "fapagri/pkg/dashboard/service"
)

type DashboardCtrl struct{ svc svc.DashboardService }

func New(s svc.DashboardService) *DashboardCtrl { return &DashboardCtrl{svc: s} }

func (h *DashboardCtrl) Stats(c echo.Context) error {
	out, err := h.svc.Stats()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DashboardCtrl) PlantationStats(c echo.Context) error {
	out, err := h.svc.PlantationStats(c.Param("plantation_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Plantation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
