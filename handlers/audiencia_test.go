package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"acta_flow_app_go/middleware"
	"acta_flow_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateAudienciaHandler(t *testing.T) {
	testDB := setupTestDB(t)
	user := createTestUser(t, testDB, models.UserRolePro)
	tenant := createTestTenant(t, testDB, user.ID, models.PlanPro)

	t.Run("ValidInput", func(t *testing.T) {
		body := `{
			"case_label": "Pérez vs. Rodríguez",
			"court": "Cámara Civil del Juzgado de Primera Instancia del DN",
			"type": "Audiencia preliminar",
			"date": "14/03/2025",
			"time": "9:7"
		}`
		_, c, rec := setupEcho(http.MethodPost, "/api/audiencias", strings.NewReader(body))
		c.Set(middleware.ContextKeyTenant, tenant)

		err := CreateAudienciaHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var audiencia models.Audiencia
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &audiencia))
		// Canonical forms persisted
		assert.Equal(t, "2025-03-14", audiencia.Date)
		assert.Equal(t, "09:07", audiencia.Time)
		assert.Equal(t, models.AudienciaStatusScheduled, audiencia.Status)
		assert.Equal(t, tenant.ID, audiencia.TenantID)
	})

	t.Run("InvalidDateGets422", func(t *testing.T) {
		body := `{
			"case_label": "Pérez vs. Rodríguez",
			"court": "Cámara Civil",
			"type": "Audiencia de fondo",
			"date": "2025-13-45",
			"time": "10:00"
		}`
		_, c, rec := setupEcho(http.MethodPost, "/api/audiencias", strings.NewReader(body))
		c.Set(middleware.ContextKeyTenant, tenant)

		err := CreateAudienciaHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Errors["date"], "DD/MM/AAAA")
	})

	t.Run("MissingRequiredFields", func(t *testing.T) {
		body := `{"date": "14/03/2025", "time": "10:00"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/audiencias", strings.NewReader(body))
		c.Set(middleware.ContextKeyTenant, tenant)

		err := CreateAudienciaHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Errors["case_label"])
		assert.NotEmpty(t, resp.Errors["court"])
		assert.NotEmpty(t, resp.Errors["type"])
	})
}

func TestListAudienciasHandler(t *testing.T) {
	testDB := setupTestDB(t)
	user := createTestUser(t, testDB, models.UserRolePro)
	tenant := createTestTenant(t, testDB, user.ID, models.PlanPro)

	otherUser := createTestUser(t, testDB, "")
	otherTenant := createTestTenant(t, testDB, otherUser.ID, models.PlanFree)

	testDB.Create(&models.Audiencia{
		TenantID: tenant.ID, CaseLabel: "Caso A", Court: "Corte A",
		Type: "Preliminar", Date: "2025-03-14", Time: "09:00", Status: models.AudienciaStatusScheduled,
	})
	testDB.Create(&models.Audiencia{
		TenantID: otherTenant.ID, CaseLabel: "Caso Ajeno", Court: "Corte B",
		Type: "Fondo", Date: "2025-03-15", Time: "10:00", Status: models.AudienciaStatusScheduled,
	})

	_, c, rec := setupEcho(http.MethodGet, "/api/audiencias", nil)
	c.Set(middleware.ContextKeyTenant, tenant)

	err := ListAudienciasHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var audiencias []models.Audiencia
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &audiencias))
	assert.Len(t, audiencias, 1)
	assert.Equal(t, "Caso A", audiencias[0].CaseLabel)
}

func TestUpdateAudienciaStatusHandler(t *testing.T) {
	testDB := setupTestDB(t)
	user := createTestUser(t, testDB, models.UserRolePro)
	tenant := createTestTenant(t, testDB, user.ID, models.PlanPro)

	audiencia := models.Audiencia{
		TenantID: tenant.ID, CaseLabel: "Caso A", Court: "Corte A",
		Type: "Preliminar", Date: "2025-03-14", Time: "09:00", Status: models.AudienciaStatusScheduled,
	}
	testDB.Create(&audiencia)

	t.Run("ValidTransition", func(t *testing.T) {
		body := `{"status":"postponed"}`
		_, c, rec := setupEcho(http.MethodPatch, "/", strings.NewReader(body))
		c.SetPath("/api/audiencias/:id/status")
		c.SetParamNames("id")
		c.SetParamValues(audiencia.ID)
		c.Set(middleware.ContextKeyTenant, tenant)

		err := UpdateAudienciaStatusHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var updated models.Audiencia
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, models.AudienciaStatusPostponed, updated.Status)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		body := `{"status":"delayed"}`
		_, c, rec := setupEcho(http.MethodPatch, "/", strings.NewReader(body))
		c.SetPath("/api/audiencias/:id/status")
		c.SetParamNames("id")
		c.SetParamValues(audiencia.ID)
		c.Set(middleware.ContextKeyTenant, tenant)

		err := UpdateAudienciaStatusHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
