package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empresacafe/coffee-registry/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for departments. Admin-only.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// Create handles POST /api/departamentos.
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req departmentRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	department, err := h.service.Create(c.Request().Context(), ports.DepartmentInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, department)
}

// List handles GET /api/departamentos.
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}

// Get handles GET /api/departamentos/:id.
func (h *DepartmentHandler) Get(c echo.Context) error {
	department, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, department)
}

// Update handles PUT /api/departamentos/:id.
func (h *DepartmentHandler) Update(c echo.Context) error {
	var req departmentRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	department, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.DepartmentInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, department)
}

// Delete handles DELETE /api/departamentos/:id.
func (h *DepartmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "department deleted"})
}

// Assign handles POST /api/departamentos/assign.
func (h *DepartmentHandler) Assign(c echo.Context) error {
	var req assignRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	if err := h.service.Assign(c.Request().Context(), req.DepartmentID, req.EmployeeID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "employee assigned"})
}
