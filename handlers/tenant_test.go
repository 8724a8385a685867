package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"acta_flow_app_go/middleware"
	"acta_flow_app_go/models"
	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetTenantHandler(t *testing.T) {
	testDB := setupTestDB(t)
	user := createTestUser(t, testDB, models.UserRolePro)
	tenant := createTestTenant(t, testDB, user.ID, models.PlanEnterprise)

	testDB.Create(&models.GeneratedDocument{
		TenantID: tenant.ID, UserID: user.ID,
		ActoSlug: "poder-especial", StorageKey: "documents/x.pdf", FileName: "x.pdf",
	})

	t.Run("DerivedFlags", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/tenant", nil)
		c.Set(middleware.ContextKeyTenant, tenant)

		err := GetTenantHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "enterprise", resp["plan"])
		assert.Equal(t, false, resp["is_free"])
		assert.Equal(t, false, resp["is_pro"])
		assert.Equal(t, true, resp["is_enterprise"])
		assert.Equal(t, float64(1), resp["documents_this_month"])
		assert.Equal(t, float64(1), resp["users"])
	})

	t.Run("NoTenant", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/api/tenant", nil)

		err := GetTenantHandler(c)
		assert.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusForbidden, he.Code)
	})
}

func TestGetPermissionsHandler(t *testing.T) {
	testDB := setupTestDB(t)
	user := createTestUser(t, testDB, models.UserRolePro)
	createTestTenant(t, testDB, user.ID, models.PlanEnterprise)

	_, c, rec := setupEcho(http.MethodGet, "/api/permissions", nil)
	c.Set(middleware.ContextKeyUser, user)

	err := GetPermissionsHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var permissions services.PermissionMap
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &permissions))
	assert.Len(t, permissions, len(services.AllPermissions))
	assert.True(t, permissions[services.PermissionGenerateLegalActs])
	assert.True(t, permissions[services.PermissionNotarialActs])
	assert.False(t, permissions[services.PermissionFullAccess])
}
