package services

import (
	"errors"
	"testing"

	"acta_flow_app_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserHasPermissionAdminGetsEverything(t *testing.T) {
	testDB := setupTenantDB(t)
	_, user := createTenantWithMember(t, testDB, models.PlanFree)
	require.NoError(t, SetUserRole(testDB, user.ID, models.UserRoleAdmin))

	for _, key := range AllPermissions {
		granted, err := UserHasPermission(testDB, user.ID, key)
		require.NoError(t, err)
		assert.True(t, granted, "admin should hold %s", key)
	}
}

func TestUserHasPermissionPlanGrants(t *testing.T) {
	testDB := setupTenantDB(t)

	tests := []struct {
		name       string
		plan       string
		role       string
		permission string
		granted    bool
	}{
		{"Free member gets nothing", models.PlanFree, models.UserRoleFree, PermissionGenerateLegalActs, false},
		{"Pro role can generate acts", models.PlanFree, models.UserRolePro, PermissionGenerateLegalActs, true},
		{"Pro role can invoice", models.PlanFree, models.UserRolePro, PermissionCreateInvoices, true},
		{"Pro role cannot manage professionals", models.PlanFree, models.UserRolePro, PermissionManageProfessionals, false},
		{"Pro tenant member can generate acts", models.PlanPro, models.UserRoleFree, PermissionGenerateLegalActs, true},
		{"Pro tenant member can manage professionals", models.PlanPro, models.UserRoleFree, PermissionManageProfessionals, true},
		{"Pro tenant lacks notarial acts", models.PlanPro, models.UserRolePro, PermissionNotarialActs, false},
		{"Enterprise tenant gets notarial acts", models.PlanEnterprise, models.UserRoleFree, PermissionNotarialActs, true},
		{"Enterprise tenant gets security", models.PlanEnterprise, models.UserRoleFree, PermissionAccessSecurity, true},
		{"Full access is admin-only", models.PlanEnterprise, models.UserRolePro, PermissionFullAccess, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			FlushCaches()
			_, user := createTenantWithMember(t, testDB, tt.plan)
			if tt.role != models.UserRoleFree {
				require.NoError(t, SetUserRole(testDB, user.ID, tt.role))
			}

			granted, err := UserHasPermission(testDB, user.ID, tt.permission)
			require.NoError(t, err)
			assert.Equal(t, tt.granted, granted)
		})
	}
}

func TestUserHasPermissionUnknownKey(t *testing.T) {
	testDB := setupTenantDB(t)

	_, err := UserHasPermission(testDB, uuid.New().String(), "delete_everything")
	assert.Error(t, err)
}

func TestCheckAllPermissionsAnonymous(t *testing.T) {
	testDB := setupTenantDB(t)

	permissions := CheckAllPermissions(testDB, "")
	assert.Empty(t, permissions)
	assert.False(t, permissions.Has(PermissionGenerateLegalActs))
}

func TestCheckAllPermissionsFaultIsolation(t *testing.T) {
	testDB := setupTenantDB(t)
	_, user := createTenantWithMember(t, testDB, models.PlanEnterprise)

	// Fault a single key: the rest of the map must still be evaluated
	original := permissionChecker
	permissionChecker = func(db *gorm.DB, userID, permission string) (bool, error) {
		if permission == PermissionAccessSecurity {
			return false, errors.New("authorization backend unavailable")
		}
		return UserHasPermission(db, userID, permission)
	}
	t.Cleanup(func() { permissionChecker = original })

	permissions := CheckAllPermissions(testDB, user.ID)

	assert.Len(t, permissions, len(AllPermissions)-1)
	assert.NotContains(t, permissions, PermissionAccessSecurity)
	assert.False(t, permissions.Has(PermissionAccessSecurity)) // absent key reads false
	assert.True(t, permissions.Has(PermissionNotarialActs))
	assert.True(t, permissions.Has(PermissionGenerateLegalActs))
}

func TestEnsureTenantRole(t *testing.T) {
	testDB := setupTenantDB(t)
	_, owner := createTenantWithMember(t, testDB, models.PlanPro)

	ok, err := EnsureTenantRole(testDB, owner.ID, models.TenantRoleOwner, models.TenantRoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = EnsureTenantRole(testDB, owner.ID, models.TenantRoleMember)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = EnsureTenantRole(testDB, uuid.New().String(), models.TenantRoleOwner)
	require.NoError(t, err)
	assert.False(t, ok)
}
