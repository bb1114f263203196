package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	svc "fapagri/pkg/report/service"
)

type ReportCtrl struct {
	svc svc.ReportService
	loc *time.Location
}

func New(s svc.ReportService, loc *time.Location) *ReportCtrl {
	if loc == nil {
		loc = time.Local
	}
	return &ReportCtrl{svc: s, loc: loc}
}

func (h *ReportCtrl) HarvestsXLSX(c echo.Context) error {
	var from, to *time.Time
	if v := c.QueryParam("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, h.loc)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "from must be YYYY-MM-DD"})
		}
		from = &t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, h.loc)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must be YYYY-MM-DD"})
		}
		// inclusive end of day
		t = t.AddDate(0, 0, 1).Add(-time.Second)
		to = &t
	}
	data, err := h.svc.HarvestWorkbook(from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="harvests.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
