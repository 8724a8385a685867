package handlers

import (
	"net/http"

	"acta_flow_app_go/db"
	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// ListNotariosHandler returns the notary directory, optionally scoped to a
// province. Cedulas come back masked.
// GET /api/notarios?provincia_id=N
func ListNotariosHandler(c echo.Context) error {
	provinciaID := parseGeoID(c, "provincia_id")

	notarios, err := services.ListNotarios(db.DB, provinciaID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch notarios")
	}
	return c.JSON(http.StatusOK, notarios)
}

// GetNotarioHandler returns one notary by id
// GET /api/notarios/:id
func GetNotarioHandler(c echo.Context) error {
	notario, err := services.GetNotario(db.DB, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch notario")
	}
	if notario == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Notario not found")
	}
	return c.JSON(http.StatusOK, notario)
}

// ImportNotariosHandler bulk-loads notaries from an uploaded Excel file.
// Row-level failures are collected and reported, not fatal.
// POST /api/notarios/import
func ImportNotariosHandler(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to open uploaded file")
	}
	defer file.Close()

	result, err := services.ImportNotarios(db.DB, file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to process import file")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_processed": result.TotalProcessed,
		"success_count":   result.SuccessCount,
		"failed_count":    result.FailedCount,
		"errors":          result.Errors,
	})
}

// NotarioImportTemplateHandler serves the downloadable Excel import template
// GET /api/notarios/import/template
func NotarioImportTemplateHandler(c echo.Context) error {
	buf, err := services.GenerateNotarioImportTemplate()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate template")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="notarios_import.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
