package services

import (
	"fmt"
	"log"

	"acta_flow_app_go/models"

	"gorm.io/gorm"
)

// Dominican provinces (ONE codes). Distrito Nacional is listed as a province
// for addressing purposes even though it is formally a district.
var dominicanProvinces = []struct {
	Code string
	Name string
}{
	{"01", "Distrito Nacional"},
	{"02", "Azua"},
	{"03", "Baoruco"},
	{"04", "Barahona"},
	{"05", "Dajabón"},
	{"06", "Duarte"},
	{"07", "Elías Piña"},
	{"08", "El Seibo"},
	{"09", "Espaillat"},
	{"10", "Independencia"},
	{"11", "La Altagracia"},
	{"12", "La Romana"},
	{"13", "La Vega"},
	{"14", "María Trinidad Sánchez"},
	{"15", "Monte Cristi"},
	{"16", "Pedernales"},
	{"17", "Peravia"},
	{"18", "Puerto Plata"},
	{"19", "Hermanas Mirabal"},
	{"20", "Samaná"},
	{"21", "San Cristóbal"},
	{"22", "San Juan"},
	{"23", "San Pedro de Macorís"},
	{"24", "Sánchez Ramírez"},
	{"25", "Santiago"},
	{"26", "Santiago Rodríguez"},
	{"27", "Valverde"},
	{"28", "Monseñor Nouel"},
	{"29", "Monte Plata"},
	{"30", "Hato Mayor"},
	{"31", "San José de Ocoa"},
	{"32", "Santo Domingo"},
}

// Head municipalities seeded per province so dependent dropdowns work out of
// the box. The full municipal registry is imported separately.
var dominicanMunicipios = map[string][]struct {
	Code string
	Name string
}{
	"01": {{"0101", "Santo Domingo de Guzmán"}},
	"25": {{"2501", "Santiago de los Caballeros"}, {"2502", "Tamboril"}, {"2503", "Villa González"}},
	"32": {{"3201", "Santo Domingo Este"}, {"3202", "Santo Domingo Oeste"}, {"3203", "Santo Domingo Norte"}, {"3204", "Boca Chica"}},
	"12": {{"1201", "La Romana"}, {"1202", "Guaymate"}},
	"11": {{"1101", "Higüey"}, {"1102", "San Rafael del Yuma"}},
	"18": {{"1801", "Puerto Plata"}, {"1802", "Sosúa"}},
}

// SeedGeography populates provincias and municipios when the tables are
// empty. Safe to call on every startup.
func SeedGeography(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Provincia{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count provincias: %w", err)
	}
	if count > 0 {
		return nil // Already seeded
	}

	for _, p := range dominicanProvinces {
		provincia := models.Provincia{
			Code:     p.Code,
			Name:     p.Name,
			IsActive: true,
		}
		if err := db.Create(&provincia).Error; err != nil {
			return fmt.Errorf("failed to seed provincia %s: %w", p.Name, err)
		}

		for _, m := range dominicanMunicipios[p.Code] {
			municipio := models.Municipio{
				ProvinciaID: provincia.ID,
				Code:        m.Code,
				Name:        m.Name,
				IsActive:    true,
			}
			if err := db.Create(&municipio).Error; err != nil {
				return fmt.Errorf("failed to seed municipio %s: %w", m.Name, err)
			}
		}
	}

	log.Printf("Seeded %d provincias", len(dominicanProvinces))
	return nil
}
