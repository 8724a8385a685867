package handlers

import (
	"net/http"
	"strconv"

	"acta_flow_app_go/db"
	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// parseGeoID parses a numeric query parameter. Absent or malformed values
// resolve to zero, which the service layer answers with an empty list.
func parseGeoID(c echo.Context, name string) uint {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// GetProvinciasHandler returns all active provinces ordered by name
// GET /api/geography/provincias
func GetProvinciasHandler(c echo.Context) error {
	provincias, err := services.GetProvincias(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch provincias")
	}
	return c.JSON(http.StatusOK, provincias)
}

// GetMunicipiosHandler returns the municipalities of a province
// GET /api/geography/municipios?provincia_id=N
func GetMunicipiosHandler(c echo.Context) error {
	provinciaID := parseGeoID(c, "provincia_id")

	municipios, err := services.GetMunicipiosByProvincia(db.DB, provinciaID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch municipios")
	}
	return c.JSON(http.StatusOK, municipios)
}

// GetSectoresHandler returns the sectors of a municipality
// GET /api/geography/sectores?municipio_id=N
func GetSectoresHandler(c echo.Context) error {
	municipioID := parseGeoID(c, "municipio_id")

	sectores, err := services.GetSectoresByMunicipio(db.DB, municipioID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch sectores")
	}
	return c.JSON(http.StatusOK, sectores)
}
