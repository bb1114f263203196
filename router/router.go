package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authController "fapagri/pkg/auth/controller"
	blockController "fapagri/pkg/block/controller"
	employeeController "fapagri/pkg/employee/controller"
	harvestController "fapagri/pkg/harvest/controller"
	plantationController "fapagri/pkg/plantation/controller"
)

func New(
	e *echo.Echo,
	authMW echo.MiddlewareFunc,
	authCtrl authController.AuthController,
	plantationCtrl plantationController.PlantationController,
	blockCtrl blockController.BlockController,
	employeeCtrl employeeController.EmployeeController,
	harvestCtrl harvestController.HarvestController,
	dashCtrl interface {
		Stats(echo.Context) error
		PlantationStats(echo.Context) error
	},
	reportCtrl interface{ HarvestsXLSX(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "FAP Agri - Farm Management System API",
			"version": "1.0.0",
		})
	})

	api := e.Group("/api/v1")

	// public paths: login and batch-code tracing (QR scans carry no token)
	api.POST("/auth/login", authCtrl.Login)
	api.GET("/harvests/trace/:batch_code", harvestCtrl.Trace)

	p := api.Group("", authMW)

	p.POST("/auth/register", authCtrl.Register)
	p.GET("/auth/me", authCtrl.Me)

	p.POST("/plantations", plantationCtrl.Create)
	p.GET("/plantations", plantationCtrl.List)
	p.GET("/plantations/:id", plantationCtrl.Get)
	p.PUT("/plantations/:id", plantationCtrl.Update)
	p.DELETE("/plantations/:id", plantationCtrl.Delete)

	p.POST("/blocks", blockCtrl.Create)
	p.GET("/blocks", blockCtrl.List)
	p.GET("/blocks/:id", blockCtrl.Get)
	p.PUT("/blocks/:id", blockCtrl.Update)
	p.DELETE("/blocks/:id", blockCtrl.Delete)

	p.POST("/employees", employeeCtrl.Create)
	p.GET("/employees", employeeCtrl.List)
	p.GET("/employees/:id", employeeCtrl.Get)
	p.PUT("/employees/:id", employeeCtrl.Update)
	p.DELETE("/employees/:id", employeeCtrl.Delete)

	p.POST("/harvests", harvestCtrl.Create)
	p.GET("/harvests", harvestCtrl.List)
	p.GET("/harvests/block/:block_id", harvestCtrl.ListByBlock)
	p.GET("/harvests/:id", harvestCtrl.Get)
	p.DELETE("/harvests/:id", harvestCtrl.Delete)

	p.GET("/dashboard/stats", dashCtrl.Stats)
	p.GET("/dashboard/plantation/:plantation_id", dashCtrl.PlantationStats)

	p.GET("/reports/harvests.xlsx", reportCtrl.HarvestsXLSX)

	return e
}
