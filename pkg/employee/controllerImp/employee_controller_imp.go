package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fapagri/database"
	"fapagri/entities"
	"fapagri/pkg/employee/controller"
	"fapagri/pkg/employee/repository"
)

type employeeCtrl struct{ repo repository.EmployeeRepository }

func New(repo repository.EmployeeRepository) controller.EmployeeController {
	return &employeeCtrl{repo}
}

type createReq struct {
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Position     string `json:"position"`
	Phone        string `json:"phone"`
	IsActive     *bool  `json:"is_active"`
}

func (h *employeeCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.EmployeeCode == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "employee_code is required"})
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	e := &entities.Employee{
		Name:         req.Name,
		EmployeeCode: req.EmployeeCode,
		Position:     req.Position,
		Phone:        req.Phone,
		IsActive:     active,
	}
	if err := h.repo.Create(e); err != nil {
		if database.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "employee_code already exists: " + req.EmployeeCode})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *employeeCtrl) List(c echo.Context) error {
	skip, limit := pageParams(c)
	out, err := h.repo.List(skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *employeeCtrl) Get(c echo.Context) error {
	e, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Employee not found"})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *employeeCtrl) Update(c echo.Context) error {
	var patch repository.EmployeePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	e, err := h.repo.UpdatePartial(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Employee not found"})
		}
		if database.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "employee_code already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *employeeCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Employee not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Employee deleted successfully"})
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
