package middleware

import (
	"net/http"

	"acta_flow_app_go/db"
	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// RequirePermission gates a route behind one permission key. A failed check
// is a denial, a failed lookup is a server error.
func RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := GetCurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			allowed, err := services.UserHasPermission(db.DB, user.ID, permission)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check permissions")
			}
			if !allowed {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}

			return next(c)
		}
	}
}
