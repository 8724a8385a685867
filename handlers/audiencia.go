package handlers

import (
	"net/http"

	"acta_flow_app_go/db"
	"acta_flow_app_go/middleware"
	"acta_flow_app_go/models"
	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// ListAudienciasHandler returns the tenant's hearings ordered by date and time
// GET /api/audiencias
func ListAudienciasHandler(c echo.Context) error {
	var audiencias []models.Audiencia
	err := middleware.GetTenantScopedQuery(c, db.DB).
		Order("date ASC, time ASC").
		Find(&audiencias).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch audiencias")
	}
	return c.JSON(http.StatusOK, audiencias)
}

// CreateAudienciaHandler validates and stores a new hearing. Validation
// failures come back as a 422 with per-field messages.
// POST /api/audiencias
func CreateAudienciaHandler(c echo.Context) error {
	tenant := middleware.GetCurrentTenant(c)
	if tenant == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No tenant assigned")
	}

	var input services.AudienciaInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	audiencia, fieldErrors := input.Validate()
	if fieldErrors.HasErrors() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fieldErrors})
	}

	audiencia.TenantID = tenant.ID
	if err := db.DB.Create(audiencia).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create audiencia")
	}

	return c.JSON(http.StatusCreated, audiencia)
}

// UpdateAudienciaStatusHandler transitions a hearing to a new status
// PATCH /api/audiencias/:id/status
func UpdateAudienciaStatusHandler(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if !models.IsValidAudienciaStatus(body.Status) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"errors": services.FieldErrors{"status": "invalid status"},
		})
	}

	var audiencia models.Audiencia
	err := middleware.GetTenantScopedQuery(c, db.DB).
		Where("id = ?", c.Param("id")).
		First(&audiencia).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Audiencia not found")
	}

	audiencia.Status = body.Status
	if err := db.DB.Save(&audiencia).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update audiencia")
	}

	return c.JSON(http.StatusOK, audiencia)
}

// DeleteAudienciaHandler soft-deletes a hearing
// DELETE /api/audiencias/:id
func DeleteAudienciaHandler(c echo.Context) error {
	result := middleware.GetTenantScopedQuery(c, db.DB).
		Where("id = ?", c.Param("id")).
		Delete(&models.Audiencia{})
	if result.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete audiencia")
	}
	if result.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Audiencia not found")
	}
	return c.NoContent(http.StatusNoContent)
}
