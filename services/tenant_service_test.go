package services

import (
	"testing"

	"acta_flow_app_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTenantDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Tenant{},
		&models.TenantUser{},
		&models.UserRole{},
		&models.GeneratedDocument{},
	)
	require.NoError(t, err)

	FlushCaches()
	t.Cleanup(FlushCaches)

	return testDB
}

func createTenantWithMember(t *testing.T, db *gorm.DB, plan string) (*models.Tenant, *models.User) {
	user := &models.User{Name: "Laura Méndez", Email: uuid.New().String() + "@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	tenant := &models.Tenant{
		Name:                 "Oficina " + uuid.New().String()[:8],
		Plan:                 plan,
		MaxUsers:             2,
		MaxDocumentsPerMonth: 3,
		Active:               true,
	}
	require.NoError(t, db.Create(tenant).Error)

	membership := &models.TenantUser{TenantID: tenant.ID, UserID: user.ID, Role: models.TenantRoleOwner}
	require.NoError(t, db.Create(membership).Error)

	return tenant, user
}

func TestGetCurrentTenant(t *testing.T) {
	testDB := setupTenantDB(t)
	tenant, user := createTenantWithMember(t, testDB, models.PlanPro)

	got, err := GetCurrentTenant(testDB, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tenant.ID, got.ID)
	assert.True(t, got.IsPro())
}

func TestGetCurrentTenantDegradesToAnonymous(t *testing.T) {
	testDB := setupTenantDB(t)

	// No identity: no query, no tenant, no error
	got, err := GetCurrentTenant(testDB, "")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Identity without membership: same neutral result
	got, err = GetCurrentTenant(testDB, uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPlanPredicatesAreExclusive(t *testing.T) {
	for _, plan := range []string{models.PlanFree, models.PlanPro, models.PlanEnterprise} {
		tenant := models.Tenant{Plan: plan}

		exclusive := 0
		for _, derived := range []bool{tenant.IsFree(), tenant.IsPro(), tenant.IsEnterprise()} {
			if derived {
				exclusive++
			}
		}
		assert.Equal(t, 1, exclusive, "plan %q must set exactly one predicate", plan)
	}
}

func TestCheckDocumentQuota(t *testing.T) {
	testDB := setupTenantDB(t)
	tenant, user := createTenantWithMember(t, testDB, models.PlanFree)

	for i := 0; i < 3; i++ {
		require.NoError(t, RecordGeneratedDocument(testDB, &models.GeneratedDocument{
			TenantID:   tenant.ID,
			UserID:     user.ID,
			ActoSlug:   "poder-especial",
			StorageKey: uuid.New().String(),
			FileName:   "poder.pdf",
		}))
	}

	err := CheckDocumentQuota(testDB, tenant)
	assert.ErrorIs(t, err, ErrDocumentLimitReached)
}

func TestCheckDocumentQuotaUnlimited(t *testing.T) {
	testDB := setupTenantDB(t)
	tenant, _ := createTenantWithMember(t, testDB, models.PlanEnterprise)
	tenant.MaxDocumentsPerMonth = -1

	assert.NoError(t, CheckDocumentQuota(testDB, tenant))
}

func TestCheckDocumentQuotaInactiveTenant(t *testing.T) {
	testDB := setupTenantDB(t)
	tenant, _ := createTenantWithMember(t, testDB, models.PlanPro)
	tenant.Active = false

	assert.ErrorIs(t, CheckDocumentQuota(testDB, tenant), ErrTenantInactive)
}

func TestCheckUserLimit(t *testing.T) {
	testDB := setupTenantDB(t)
	tenant, _ := createTenantWithMember(t, testDB, models.PlanFree)

	// One of two seats taken
	require.NoError(t, CheckUserLimit(testDB, tenant))

	second := &models.User{Name: "Segundo", Email: uuid.New().String() + "@example.com", Password: "x"}
	require.NoError(t, testDB.Create(second).Error)
	require.NoError(t, testDB.Create(&models.TenantUser{
		TenantID: tenant.ID, UserID: second.ID, Role: models.TenantRoleMember,
	}).Error)

	assert.ErrorIs(t, CheckUserLimit(testDB, tenant), ErrUserLimitReached)
}

func TestTenantSlugGenerated(t *testing.T) {
	testDB := setupTenantDB(t)

	tenant := &models.Tenant{Name: "Bufete García & Asociados", Active: true}
	require.NoError(t, testDB.Create(tenant).Error)
	assert.Equal(t, "bufete-garca-asociados", tenant.Slug)
}
