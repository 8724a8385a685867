package services

import (
	"errors"
	"fmt"

	"acta_flow_app_go/models"

	"gorm.io/gorm"
)

// NotarioView is the read model served to directory listings: identity plus
// masked cedula and resolved geography names. Read-only, built per request.
type NotarioView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CedulaMasked string `json:"cedula_masked"`
	Exequatur    string `json:"exequatur"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Provincia    string `json:"provincia"`
	Municipio    string `json:"municipio"`
}

func buildNotarioView(n *models.Notario) NotarioView {
	view := NotarioView{
		ID:           n.ID,
		Name:         n.Name,
		CedulaMasked: MaskCedula(n.Cedula),
		Exequatur:    n.Exequatur,
		Email:        n.Email,
		Phone:        n.Phone,
	}
	if n.Provincia != nil {
		view.Provincia = n.Provincia.Name
	}
	if n.Municipio != nil {
		view.Municipio = n.Municipio.Name
	}
	return view
}

// ListNotarios returns the active notary directory ordered by name, optionally
// scoped to a province. The cedula is never exposed unmasked.
func ListNotarios(db *gorm.DB, provinciaID uint) ([]NotarioView, error) {
	query := db.Preload("Provincia").Preload("Municipio").
		Where("is_active = ?", true).
		Order("name ASC")

	if provinciaID != 0 {
		query = query.Where("provincia_id = ?", provinciaID)
	}

	var notarios []models.Notario
	if err := query.Find(&notarios).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch notarios: %w", err)
	}

	views := make([]NotarioView, 0, len(notarios))
	for i := range notarios {
		views = append(views, buildNotarioView(&notarios[i]))
	}
	return views, nil
}

// GetNotario returns one directory entry, or (nil, nil) when absent
func GetNotario(db *gorm.DB, id string) (*NotarioView, error) {
	var notario models.Notario
	err := db.Preload("Provincia").Preload("Municipio").First(&notario, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notario: %w", err)
	}

	view := buildNotarioView(&notario)
	return &view, nil
}
