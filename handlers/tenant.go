package handlers

import (
	"net/http"

	"acta_flow_app_go/db"
	"acta_flow_app_go/middleware"
	"acta_flow_app_go/models"
	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetTenantHandler returns the current tenant with its derived plan flags
// and monthly usage. The is_* flags are computed here, never stored.
// GET /api/tenant
func GetTenantHandler(c echo.Context) error {
	tenant := middleware.GetCurrentTenant(c)
	if tenant == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No tenant assigned")
	}

	documentsThisMonth, err := services.CountMonthlyDocuments(db.DB, tenant.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count documents")
	}

	var userCount int64
	err = db.DB.Model(&models.TenantUser{}).Where("tenant_id = ?", tenant.ID).Count(&userCount).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count users")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":                      tenant.ID,
		"name":                    tenant.Name,
		"slug":                    tenant.Slug,
		"plan":                    tenant.Plan,
		"is_free":                 tenant.IsFree(),
		"is_pro":                  tenant.IsPro(),
		"is_enterprise":           tenant.IsEnterprise(),
		"active":                  tenant.Active,
		"max_users":               tenant.MaxUsers,
		"max_documents_per_month": tenant.MaxDocumentsPerMonth,
		"users":                   userCount,
		"documents_this_month":    documentsThisMonth,
	})
}

// GetPermissionsHandler returns the evaluated permission map for the current
// user. Keys that failed to evaluate are omitted rather than failing the
// whole response.
// GET /api/permissions
func GetPermissionsHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	permissions := services.CheckAllPermissions(db.DB, user.ID)
	return c.JSON(http.StatusOK, permissions)
}
