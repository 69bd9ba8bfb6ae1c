package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
	"github.com/empresacafe/coffee-registry/internal/core/ports"
)

// RBAC enforces role-based access control. The caller's role is resolved by
// a fresh credential store lookup rather than trusted from a token claim, so
// a role change applies immediately to tokens issued before it.
func RBAC(store ports.CredentialStore, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(ContextUserID).(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := store.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					// token subject no longer exists
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			if _, ok := allowed[user.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}

			c.Set(ContextRole, user.Role)
			return next(c)
		}
	}
}
