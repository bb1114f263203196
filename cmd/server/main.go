package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"fapagri/config"
	"fapagri/database"
	"fapagri/router"

	// Auth
	authCtrlImp "fapagri/pkg/auth/controllerImp"
	authSvcImp "fapagri/pkg/auth/serviceImp"
	userRepoImp "fapagri/pkg/user/repositoryImp"

	// Plantation / Block / Employee
	blockCtrlImp "fapagri/pkg/block/controllerImp"
	blockRepoImp "fapagri/pkg/block/repositoryImp"
	employeeCtrlImp "fapagri/pkg/employee/controllerImp"
	employeeRepoImp "fapagri/pkg/employee/repositoryImp"
	plantationCtrlImp "fapagri/pkg/plantation/controllerImp"
	plantationRepoImp "fapagri/pkg/plantation/repositoryImp"

	// Harvest + traceability
	harvestCtrlImp "fapagri/pkg/harvest/controllerImp"
	harvestRepoImp "fapagri/pkg/harvest/repositoryImp"
	harvestSvcImp "fapagri/pkg/harvest/serviceImp"

	// Dashboard / Reports / Health
	dashCtrlImp "fapagri/pkg/dashboard/controllerImp"
	dashSvc "fapagri/pkg/dashboard/service"
	healthCtrlImp "fapagri/pkg/health/controllerImp"
	reportCtrlImp "fapagri/pkg/report/controllerImp"
	reportSvc "fapagri/pkg/report/service"

	"fapagri/pkg/middleware"
)

func main() {
	// 1) Config
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("WARN: unknown timezone %q, using local: %v", cfg.Timezone, err)
		loc = time.Local
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	defer logger.Sync()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// 4) Repos
	users := userRepoImp.New(db)
	plantations := plantationRepoImp.New(db)
	blocks := blockRepoImp.New(db)
	employees := employeeRepoImp.New(db)
	harvests := harvestRepoImp.New(db)

	// 5) Services
	aSvc := authSvcImp.New(users, cfg.JWTSecret, time.Duration(cfg.TokenTTLMin)*time.Minute, logger)
	hSvc := harvestSvcImp.New(harvests, blocks, employees, logger)
	dSvc := dashSvc.New(db, loc)
	rSvc := reportSvc.New(db)

	// 6) Controllers
	authCtrl := authCtrlImp.New(aSvc)
	pCtrl := plantationCtrlImp.New(plantations)
	bCtrl := blockCtrlImp.New(blocks, plantations)
	eCtrl := employeeCtrlImp.New(employees)
	hCtrl := harvestCtrlImp.New(hSvc, harvests, loc)
	dCtrl := dashCtrlImp.New(dSvc)
	rCtrl := reportCtrlImp.New(rSvc, loc)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	authMW := middleware.BearerAuth(cfg.JWTSecret, users, logger)
	r := router.New(e, authMW, authCtrl, pCtrl, bCtrl, eCtrl, hCtrl, dCtrl, rCtrl, healthCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
