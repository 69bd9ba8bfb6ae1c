package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empresacafe/coffee-registry/internal/core/ports"
)

// ApplicantHandler handles HTTP requests for applicant records.
type ApplicantHandler struct {
	service ports.ApplicantService
}

func NewApplicantHandler(service ports.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{service: service}
}

// Create handles POST /api/aspirantes.
//
// @Summary      Register a new applicant
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applicantRequest  true  "Applicant details"
// @Success      201   {object}  domain.Applicant
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/aspirantes [post]
func (h *ApplicantHandler) Create(c echo.Context) error {
	var req applicantRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	applicant, err := h.service.Create(c.Request().Context(), toApplicantInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, applicant)
}

// List handles GET /api/aspirantes.
func (h *ApplicantHandler) List(c echo.Context) error {
	applicants, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicants)
}

// Get handles GET /api/aspirantes/:id.
func (h *ApplicantHandler) Get(c echo.Context) error {
	applicant, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicant)
}

// Update handles PUT /api/aspirantes/:id.
func (h *ApplicantHandler) Update(c echo.Context) error {
	var req applicantRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	applicant, err := h.service.Update(c.Request().Context(), c.Param("id"), toApplicantInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicant)
}

// Delete handles DELETE /api/aspirantes/:id.
func (h *ApplicantHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "applicant deleted"})
}

func toApplicantInput(req applicantRequest) ports.ApplicantInput {
	return ports.ApplicantInput{
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
