package middleware

import (
	"net/http"

	"acta_flow_app_go/config"
	"acta_flow_app_go/db"
	"acta_flow_app_go/models"
	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "acta_flow_session"
	// ContextKeyUser is the context key for the authenticated user
	ContextKeyUser = "user"
	// ContextKeyTenant is the context key for the user's tenant
	ContextKeyTenant = "tenant"
	// ContextKeySession is the context key for the session
	ContextKeySession = "session"
)

// RequireAuth is middleware that requires a valid session
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			session, err := services.ValidateSession(db.DB, cookie.Value)
			if err != nil {
				clearSessionCookie(c)
				return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
			}

			if !session.User.IsActive {
				clearSessionCookie(c)
				return echo.NewHTTPError(http.StatusUnauthorized, "Account disabled")
			}

			c.Set(ContextKeyUser, &session.User)
			c.Set(ContextKeyTenant, session.Tenant)
			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

// RequireTenant ensures the authenticated user belongs to an active tenant
func RequireTenant() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tenant := GetCurrentTenant(c)
			if tenant == nil {
				return echo.NewHTTPError(http.StatusForbidden, "No tenant assigned")
			}
			if !tenant.Active {
				return echo.NewHTTPError(http.StatusForbidden, "Tenant is inactive")
			}
			return next(c)
		}
	}
}

// GetCurrentUser retrieves the current user from context
func GetCurrentUser(c echo.Context) *models.User {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetCurrentTenant retrieves the current tenant from context. Users without
// a tenant yet get nil.
func GetCurrentTenant(c echo.Context) *models.Tenant {
	tenant, ok := c.Get(ContextKeyTenant).(*models.Tenant)
	if !ok {
		return nil
	}
	return tenant
}

// GetCurrentSession retrieves the session from context
func GetCurrentSession(c echo.Context) *models.Session {
	session, ok := c.Get(ContextKeySession).(*models.Session)
	if !ok {
		return nil
	}
	return session
}

// GetTenantScopedQuery returns a GORM query scoped to the current tenant.
// Without a tenant the query matches nothing.
func GetTenantScopedQuery(c echo.Context, db *gorm.DB) *gorm.DB {
	tenant := GetCurrentTenant(c)
	if tenant == nil {
		// Return query that matches nothing
		return db.Where("1 = 0")
	}
	return db.Where("tenant_id = ?", tenant.ID)
}

// SetSessionCookie writes the session cookie for a logged-in user
func SetSessionCookie(c echo.Context, cfg *config.Config, session *models.Session) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)
}

// clearSessionCookie clears the session cookie
func clearSessionCookie(c echo.Context) {
	var isProduction bool
	if cfg, ok := c.Get("config").(*config.Config); ok {
		isProduction = cfg.Environment == "production"
	}

	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)
}

// ClearSessionCookie clears the session cookie (logout)
func ClearSessionCookie(c echo.Context) {
	clearSessionCookie(c)
}
