package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"acta_flow_app_go/config"
	"acta_flow_app_go/db"
	"acta_flow_app_go/models"
	"acta_flow_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.Exec("PRAGMA journal_mode=WAL;").Error
	assert.NoError(t, err)

	// Initialize Storage for tests if not already set
	if services.Storage == nil {
		services.Storage = services.NewLocalStorage(t.TempDir())
	}

	err = testDB.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Tenant{},
		&models.TenantUser{},
		&models.Session{},
		&models.Provincia{},
		&models.Municipio{},
		&models.Sector{},
		&models.Notario{},
		&models.DocumentTemplate{},
		&models.GeneratedDocument{},
		&models.Audiencia{},
		&models.Plazo{},
	)
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB
	services.FlushCaches()

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
	})

	return e, c, rec
}

func createTestUser(t *testing.T, testDB *gorm.DB, role string) *models.User {
	t.Helper()

	hashed, err := services.HashPassword("password123")
	assert.NoError(t, err)

	user := &models.User{
		Name:     "Test User",
		Email:    uuid.New().String() + "@example.com",
		Password: hashed,
		IsActive: true,
	}
	assert.NoError(t, testDB.Create(user).Error)

	if role != "" {
		assert.NoError(t, services.SetUserRole(testDB, user.ID, role))
	}

	return user
}

func createTestTenant(t *testing.T, testDB *gorm.DB, userID, plan string) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		Name:                 "Oficina Test " + uuid.New().String()[:8],
		Plan:                 plan,
		MaxUsers:             5,
		MaxDocumentsPerMonth: 100,
		Active:               true,
	}
	assert.NoError(t, testDB.Create(tenant).Error)

	membership := &models.TenantUser{
		TenantID: tenant.ID,
		UserID:   userID,
		Role:     models.TenantRoleOwner,
	}
	assert.NoError(t, testDB.Create(membership).Error)

	services.InvalidateTenantCache(userID)
	return tenant
}
