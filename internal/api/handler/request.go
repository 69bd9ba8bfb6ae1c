package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindStrict decodes the request body into v, rejecting unknown fields, then
// runs struct validation. Both failure modes surface as a 400 so malformed
// and loosely-shaped payloads are refused deterministically.
func bindStrict(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
