package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		body string
	}{
		{domain.ErrValidation, http.StatusBadRequest, "invalid input"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "invalid credentials"},
		// not 404: usernames must not be enumerable
		{domain.ErrUserNotFound, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrApplicantNotFound, http.StatusNotFound, "applicant not found"},
		{domain.ErrEmployeeNotFound, http.StatusNotFound, "employee not found"},
		{domain.ErrDepartmentNotFound, http.StatusNotFound, "department not found"},
		{domain.ErrCorruptCredential, http.StatusInternalServerError, "internal server error"},
		{domain.ErrSigningKey, http.StatusInternalServerError, "internal server error"},
		{errors.New("database exploded"), http.StatusInternalServerError, "internal server error"},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.body) {
			t.Fatalf("%v: expected body to contain %q, got %s", tc.err, tc.body, rec.Body.String())
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(fmt.Errorf("login: %w", domain.ErrUnauthorized), c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrapped error, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(echo.NewHTTPError(http.StatusTeapot, "short and stout"), c)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "short and stout") {
		t.Fatalf("expected message passthrough, got %s", rec.Body.String())
	}
}
