package services

import (
	"fmt"

	"acta_flow_app_go/models"

	"gorm.io/gorm"
)

// GetProvincias returns all active provinces ordered by name.
// Alphabetical ascending order is a user-facing contract: dropdowns render
// these lists as-is.
func GetProvincias(db *gorm.DB) ([]models.Provincia, error) {
	const cacheKey = "provincias"
	if cached, found := referenceCache.Get(cacheKey); found {
		return cached.([]models.Provincia), nil
	}

	var provincias []models.Provincia
	err := db.Where("is_active = ?", true).
		Order("name ASC").
		Find(&provincias).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provincias: %w", err)
	}

	referenceCache.SetDefault(cacheKey, provincias)
	return provincias, nil
}

// GetMunicipiosByProvincia returns the active municipalities of a province,
// ordered by name. A zero province id disables the query entirely: no
// unscoped full-table fetch is ever issued, the caller gets an empty list.
func GetMunicipiosByProvincia(db *gorm.DB, provinciaID uint) ([]models.Municipio, error) {
	if provinciaID == 0 {
		return []models.Municipio{}, nil
	}

	cacheKey := fmt.Sprintf("municipios:%d", provinciaID)
	if cached, found := referenceCache.Get(cacheKey); found {
		return cached.([]models.Municipio), nil
	}

	var municipios []models.Municipio
	err := db.Where("provincia_id = ? AND is_active = ?", provinciaID, true).
		Order("name ASC").
		Find(&municipios).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch municipios: %w", err)
	}

	referenceCache.SetDefault(cacheKey, municipios)
	return municipios, nil
}

// GetSectoresByMunicipio returns the active sectors of a municipality,
// ordered by name. Same parent-before-child rule as municipios.
func GetSectoresByMunicipio(db *gorm.DB, municipioID uint) ([]models.Sector, error) {
	if municipioID == 0 {
		return []models.Sector{}, nil
	}

	cacheKey := fmt.Sprintf("sectores:%d", municipioID)
	if cached, found := referenceCache.Get(cacheKey); found {
		return cached.([]models.Sector), nil
	}

	var sectores []models.Sector
	err := db.Where("municipio_id = ? AND is_active = ?", municipioID, true).
		Order("name ASC").
		Find(&sectores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sectores: %w", err)
	}

	referenceCache.SetDefault(cacheKey, sectores)
	return sectores, nil
}
