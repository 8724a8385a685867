package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"acta_flow_app_go/models"
	"acta_flow_app_go/services"

	"github.com/stretchr/testify/assert"
)

func TestListNotariosHandler(t *testing.T) {
	testDB := setupTestDB(t)

	provincia := models.Provincia{Code: "01", Name: "Distrito Nacional", IsActive: true}
	testDB.Create(&provincia)

	testDB.Create(&models.Notario{
		Name: "Dra. Carmen Peña", Cedula: "001-1234567-8",
		Exequatur: "1234-56", ProvinciaID: &provincia.ID, IsActive: true,
	})
	testDB.Create(&models.Notario{
		Name: "Lic. Alberto Cruz", Cedula: "002-7654321-0",
		Exequatur: "9876-54", IsActive: true,
	})

	t.Run("AllMasked", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/notarios", nil)

		err := ListNotariosHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var notarios []services.NotarioView
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notarios))
		assert.Len(t, notarios, 2)
		// Alphabetical, cedula masked to last four digits
		assert.Equal(t, "Dra. Carmen Peña", notarios[0].Name)
		assert.Equal(t, "***-*******-5678", notarios[0].CedulaMasked)
		assert.NotContains(t, rec.Body.String(), "001-1234567-8")
	})

	t.Run("ScopedToProvincia", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/notarios?provincia_id=1", nil)

		err := ListNotariosHandler(c)
		assert.NoError(t, err)

		var notarios []services.NotarioView
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notarios))
		assert.Len(t, notarios, 1)
		assert.Equal(t, "Distrito Nacional", notarios[0].Provincia)
	})
}

func TestNotarioImportTemplateHandler(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(http.MethodGet, "/api/notarios/import/template", nil)

	err := NotarioImportTemplateHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "notarios_import.xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}
