package handlers

import (
	"errors"
	"net/http"

	"acta_flow_app_go/config"
	"acta_flow_app_go/db"
	"acta_flow_app_go/middleware"
	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// LoginRequest is the JSON body for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler authenticates a user and starts a session
// POST /api/auth/login
func LoginHandler(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	user, err := services.Authenticate(db.DB, req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to log in")
	}

	session, err := services.CreateSession(db.DB, user.ID, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create session")
	}

	if cfg, ok := c.Get("config").(*config.Config); ok {
		middleware.SetSessionCookie(c, cfg, session)
	} else {
		middleware.SetSessionCookie(c, &config.Config{}, session)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// LogoutHandler deletes the current session
// POST /api/auth/logout
func LogoutHandler(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := services.DeleteSession(db.DB, cookie.Value); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to log out")
		}
	}

	middleware.ClearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// MeHandler returns the authenticated user's profile with masked contact
// details and the resolved global role
// GET /api/me
func MeHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	role, err := services.GetUserRole(db.DB, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve role")
	}

	resp := echo.Map{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"email_masked": services.MaskEmail(user.Email),
		"role":         role.Role,
	}
	if tenant := middleware.GetCurrentTenant(c); tenant != nil {
		resp["tenant_id"] = tenant.ID
	}

	return c.JSON(http.StatusOK, resp)
}
