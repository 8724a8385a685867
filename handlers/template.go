package handlers

import (
	"net/http"

	"acta_flow_app_go/db"
	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// ListTemplatesHandler returns the active document templates, optionally
// filtered by categoria
// GET /api/templates?categoria=judicial|extrajudicial|notarial
func ListTemplatesHandler(c echo.Context) error {
	categoria := c.QueryParam("categoria")

	if categoria != "" {
		templates, err := services.GetTemplatesByCategoria(db.DB, categoria)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid categoria")
		}
		return c.JSON(http.StatusOK, templates)
	}

	templates, err := services.GetActiveTemplates(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch templates")
	}
	return c.JSON(http.StatusOK, templates)
}

// GetTemplateHandler returns one template with its body loaded from storage
// GET /api/templates/:slug
func GetTemplateHandler(c echo.Context) error {
	template, err := services.GetTemplateBySlug(db.DB, c.Param("slug"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch template")
	}
	if template == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Template not found")
	}

	body, err := services.GetTemplateBody(c.Request().Context(), template)
	if err != nil {
		// Metadata without a stored body still renders the catalog entry
		body = ""
	}

	return c.JSON(http.StatusOK, echo.Map{
		"template": template,
		"body":     body,
	})
}
