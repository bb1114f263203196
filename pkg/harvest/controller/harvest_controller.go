package controller

import "github.com/labstack/echo/v4"

type HarvestController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	ListByBlock(c echo.Context) error
	Trace(c echo.Context) error
	Delete(c echo.Context) error
}
