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

func TestCreatePlazoHandler(t *testing.T) {
	testDB := setupTestDB(t)
	user := createTestUser(t, testDB, models.UserRolePro)
	tenant := createTestTenant(t, testDB, user.ID, models.PlanPro)

	t.Run("ValidInput", func(t *testing.T) {
		body := `{
			"case_label": "Pérez vs. Rodríguez",
			"type": "Depósito de escrito de conclusiones",
			"due_date": "2025-04-01"
		}`
		_, c, rec := setupEcho(http.MethodPost, "/api/plazos", strings.NewReader(body))
		c.Set(middleware.ContextKeyTenant, tenant)

		err := CreatePlazoHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var plazo models.Plazo
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plazo))
		assert.Equal(t, "2025-04-01", plazo.DueDate)
		// Defaulted priority
		assert.Equal(t, models.PlazoPriorityMedium, plazo.Priority)
	})

	t.Run("InvalidPriority", func(t *testing.T) {
		body := `{
			"case_label": "Pérez vs. Rodríguez",
			"type": "Apelación",
			"due_date": "01/04/2025",
			"priority": "urgent"
		}`
		_, c, rec := setupEcho(http.MethodPost, "/api/plazos", strings.NewReader(body))
		c.Set(middleware.ContextKeyTenant, tenant)

		err := CreatePlazoHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid priority", resp.Errors["priority"])
	})
}

func TestListPlazosHandler(t *testing.T) {
	testDB := setupTestDB(t)
	user := createTestUser(t, testDB, models.UserRolePro)
	tenant := createTestTenant(t, testDB, user.ID, models.PlanPro)

	testDB.Create(&models.Plazo{
		TenantID: tenant.ID, CaseLabel: "Caso B", Type: "Apelación",
		DueDate: "2025-05-01", Priority: models.PlazoPriorityHigh,
	})
	testDB.Create(&models.Plazo{
		TenantID: tenant.ID, CaseLabel: "Caso A", Type: "Conclusiones",
		DueDate: "2025-04-01", Priority: models.PlazoPriorityMedium,
	})

	_, c, rec := setupEcho(http.MethodGet, "/api/plazos", nil)
	c.Set(middleware.ContextKeyTenant, tenant)

	err := ListPlazosHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var plazos []models.Plazo
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plazos))
	assert.Len(t, plazos, 2)
	// Ordered by due date
	assert.Equal(t, "Caso A", plazos[0].CaseLabel)
}
