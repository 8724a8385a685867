package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestListActosHandler(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/actos", nil)

		err := ListActosHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var actos []map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actos))
		assert.Equal(t, len(services.GetAllActos()), len(actos))
	})

	t.Run("FilterByMateria", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/actos?materia=Civil", nil)

		err := ListActosHandler(c)
		assert.NoError(t, err)

		var actos []map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actos))
		assert.Len(t, actos, 3)
		assert.Equal(t, "intimacion-de-pago", actos[0]["slug"])
	})

	t.Run("UnknownMateriaIsEmpty", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/actos?materia=Maritimo", nil)

		err := ListActosHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var actos []map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actos))
		assert.Empty(t, actos)
	})
}

func TestGetActoHandler(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		c.SetPath("/api/actos/:slug")
		c.SetParamNames("slug")
		c.SetParamValues("poder-especial")

		err := GetActoHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var acto map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &acto))
		assert.Equal(t, "poder-especial", acto["slug"])
	})

	t.Run("NotFound", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/", nil)
		c.SetPath("/api/actos/:slug")
		c.SetParamNames("slug")
		c.SetParamValues("no-existe")

		err := GetActoHandler(c)
		assert.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func TestGetActoFieldsHandler(t *testing.T) {
	t.Run("KnownSlug", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		c.SetPath("/api/actos/:slug/fields")
		c.SetParamNames("slug")
		c.SetParamValues("intimacion-de-pago")

		err := GetActoFieldsHandler(c)
		assert.NoError(t, err)

		var fields []map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
		assert.NotEmpty(t, fields)
	})

	t.Run("UnknownSlugYieldsEmptyList", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		c.SetPath("/api/actos/:slug/fields")
		c.SetParamNames("slug")
		c.SetParamValues("no-existe")

		err := GetActoFieldsHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestRenderActoHandler(t *testing.T) {
	t.Run("FillsValues", func(t *testing.T) {
		body := `{"values":{"requirente_nombre":"Juan Pérez","monto_adeudado":"50000"}}`
		_, c, rec := setupEcho(http.MethodPost, "/", strings.NewReader(body))
		c.SetPath("/api/actos/:slug/render")
		c.SetParamNames("slug")
		c.SetParamValues("intimacion-de-pago")

		err := RenderActoHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp["content"], "Juan Pérez")
		assert.NotEmpty(t, resp["html"])
	})

	t.Run("UnknownSlug", func(t *testing.T) {
		body := `{"values":{}}`
		_, c, _ := setupEcho(http.MethodPost, "/", strings.NewReader(body))
		c.SetPath("/api/actos/:slug/render")
		c.SetParamNames("slug")
		c.SetParamValues("no-existe")

		err := RenderActoHandler(c)
		assert.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func TestGetMateriasHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/api/actos/materias", nil)

	err := GetMateriasHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var materias []string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &materias))
	assert.Contains(t, materias, "Civil")
}
