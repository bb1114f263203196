package controllerImp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const serviceVersion = "1.0.0"

type HealthCtrl struct {
	db    *gorm.DB
	start time.Time
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl {
	return &HealthCtrl{db: db, start: time.Now()}
}

// Health pings the store connection without touching any business table.
// A failed ping answers 503 so orchestrators stop routing traffic here.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	status, dbState := "healthy", "ok"
	code := http.StatusOK
	if err := h.ping(ctx); err != nil {
		status, dbState = "degraded", err.Error()
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, echo.Map{
		"service":    "FAP Agri - Farm Management System API",
		"version":    serviceVersion,
		"status":     status,
		"database":   dbState,
		"uptime_sec": int(time.Since(h.start).Seconds()),
	})
}

func (h *HealthCtrl) ping(ctx context.Context) error {
	if h.db == nil {
		return errors.New("store not configured")
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
