package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"acta_flow_app_go/config"
	"acta_flow_app_go/db"
	"acta_flow_app_go/middleware"
	"acta_flow_app_go/models"
	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// ListActosHandler returns the act catalog, optionally filtered by materia,
// naturaleza or ejecutor. Filters are exclusive: the first one present wins.
// GET /api/actos?materia=&naturaleza=&ejecutor=
func ListActosHandler(c echo.Context) error {
	var actos []*services.ActoBundle

	switch {
	case c.QueryParam("materia") != "":
		actos = services.GetActosByMateria(c.QueryParam("materia"))
	case c.QueryParam("naturaleza") != "":
		actos = services.GetActosByNaturaleza(c.QueryParam("naturaleza"))
	case c.QueryParam("ejecutor") != "":
		actos = services.GetActosByEjecutor(c.QueryParam("ejecutor"))
	default:
		actos = services.GetAllActos()
	}

	return c.JSON(http.StatusOK, actos)
}

// GetMateriasHandler returns the distinct materias of the catalog
// GET /api/actos/materias
func GetMateriasHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, services.GetAllMaterias())
}

// GetActoHandler returns one act bundle by slug
// GET /api/actos/:slug
func GetActoHandler(c echo.Context) error {
	acto := services.GetActoBySlug(c.Param("slug"))
	if acto == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Acto not found")
	}
	return c.JSON(http.StatusOK, acto)
}

// GetActoFieldsHandler returns the input schema of an act. An unknown slug
// yields an empty list, not an error.
// GET /api/actos/:slug/fields
func GetActoFieldsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, services.GetFieldsByActo(c.Param("slug")))
}

// RenderActoRequest is the JSON body for render and PDF generation
type RenderActoRequest struct {
	Values map[string]string `json:"values"`
}

// RenderActoHandler fills an act template with the submitted values and
// returns the rendered text and sanitized HTML preview
// POST /api/actos/:slug/render
func RenderActoHandler(c echo.Context) error {
	slug := c.Param("slug")
	if services.GetActoBySlug(slug) == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Acto not found")
	}

	var req RenderActoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"slug":    slug,
		"content": services.RenderActo(slug, req.Values),
		"html":    services.RenderActoHTML(slug, req.Values),
	})
}

// GenerateActoPDFHandler renders an act to PDF, stores it, records it against
// the tenant's monthly quota and streams the bytes back
// POST /api/actos/:slug/pdf
func GenerateActoPDFHandler(c echo.Context) error {
	slug := c.Param("slug")
	acto := services.GetActoBySlug(slug)
	if acto == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Acto not found")
	}

	user := middleware.GetCurrentUser(c)
	tenant := middleware.GetCurrentTenant(c)
	if user == nil || tenant == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No tenant assigned")
	}

	if err := services.CheckDocumentQuota(db.DB, tenant); err != nil {
		if errors.Is(err, services.ErrDocumentLimitReached) {
			return echo.NewHTTPError(http.StatusForbidden, "Monthly document limit reached")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check document quota")
	}

	var req RenderActoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	pdfBytes, err := services.GenerateActoPDF(slug, req.Values, services.DefaultPDFOptions())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate PDF")
	}

	fileName := fmt.Sprintf("%s-%s.pdf", slug, time.Now().Format("20060102-150405"))
	storageKey := fmt.Sprintf("documents/%s/%s", tenant.ID, fileName)

	result, err := services.Storage.UploadReader(
		c.Request().Context(),
		bytes.NewReader(pdfBytes),
		storageKey,
		"application/pdf",
		int64(len(pdfBytes)),
	)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store document")
	}

	doc := &models.GeneratedDocument{
		TenantID:   tenant.ID,
		UserID:     user.ID,
		ActoSlug:   slug,
		StorageKey: result.Key,
		FileName:   fileName,
		FileSize:   result.FileSize,
	}
	if err := services.RecordGeneratedDocument(db.DB, doc); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record document")
	}

	if cfg, ok := c.Get("config").(*config.Config); ok {
		go notifyDocumentReady(cfg, user.Email, acto.Nombre, result.Key)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}

// notifyDocumentReady emails a temporary download link for a generated
// document. Best effort: failures are logged, never surfaced to the request.
func notifyDocumentReady(cfg *config.Config, toEmail, documentName, storageKey string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	downloadURL, err := services.Storage.GetSignedURL(ctx, storageKey, 24*time.Hour)
	if err != nil {
		log.Printf("[WARNING] Failed to sign download URL for %s: %v", storageKey, err)
		return
	}

	email := services.BuildDocumentReadyEmail(toEmail, documentName, downloadURL)
	if err := services.SendEmail(cfg, email); err != nil {
		log.Printf("[WARNING] Failed to send document notification: %v", err)
	}
}
