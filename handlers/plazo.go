package handlers

import (
	"net/http"

	"acta_flow_app_go/db"
	"acta_flow_app_go/middleware"
	"acta_flow_app_go/models"
	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// ListPlazosHandler returns the tenant's deadlines ordered by due date
// GET /api/plazos
func ListPlazosHandler(c echo.Context) error {
	var plazos []models.Plazo
	err := middleware.GetTenantScopedQuery(c, db.DB).
		Order("due_date ASC").
		Find(&plazos).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch plazos")
	}
	return c.JSON(http.StatusOK, plazos)
}

// CreatePlazoHandler validates and stores a new deadline. Validation failures
// come back as a 422 with per-field messages.
// POST /api/plazos
func CreatePlazoHandler(c echo.Context) error {
	tenant := middleware.GetCurrentTenant(c)
	if tenant == nil {
		return echo.NewHTTPError(http.StatusForbidden, "No tenant assigned")
	}

	var input services.PlazoInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	plazo, fieldErrors := input.Validate()
	if fieldErrors.HasErrors() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fieldErrors})
	}

	plazo.TenantID = tenant.ID
	if err := db.DB.Create(plazo).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create plazo")
	}

	return c.JSON(http.StatusCreated, plazo)
}

// DeletePlazoHandler soft-deletes a deadline
// DELETE /api/plazos/:id
func DeletePlazoHandler(c echo.Context) error {
	result := middleware.GetTenantScopedQuery(c, db.DB).
		Where("id = ?", c.Param("id")).
		Delete(&models.Plazo{})
	if result.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete plazo")
	}
	if result.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Plazo not found")
	}
	return c.NoContent(http.StatusNoContent)
}
