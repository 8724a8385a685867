package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notario represents an entry in the public notary directory
type Notario struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name      string `gorm:"not null;index" json:"name"`
	Cedula    string `gorm:"size:20;not null;uniqueIndex" json:"-"` // exposed only masked
	Exequatur string `gorm:"size:20" json:"exequatur"`              // professional license number
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	ProvinciaID *uint `gorm:"index" json:"provincia_id"`
	MunicipioID *uint `gorm:"index" json:"municipio_id"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	Provincia *Provincia `gorm:"foreignKey:ProvinciaID" json:"provincia,omitempty"`
	Municipio *Municipio `gorm:"foreignKey:MunicipioID" json:"municipio,omitempty"`
}

// BeforeCreate hook to generate UUID
func (n *Notario) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Notario model
func (Notario) TableName() string {
	return "notarios"
}
