package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empresacafe/coffee-registry/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee records. All routes are
// admin-only; the RBAC middleware enforces the allow-list.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create handles POST /api/empleados.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	employee, err := h.service.Create(c.Request().Context(), toEmployeeInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

// List handles GET /api/empleados.
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Get handles GET /api/empleados/:id.
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Update handles PUT /api/empleados/:id.
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	employee, err := h.service.Update(c.Request().Context(), c.Param("id"), toEmployeeInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /api/empleados/:id.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "employee deleted"})
}

func toEmployeeInput(req employeeRequest) ports.EmployeeInput {
	return ports.EmployeeInput{
		Nombre:          req.Nombre,
		Identificacion:  req.Identificacion,
		TipoCafe:        req.TipoCafe,
		Peso:            req.Peso,
		Precio:          req.Precio,
		Telefono:        req.Telefono,
		Estado:          req.Estado,
		EstadoMonetario: req.EstadoMonetario,
	}
}
