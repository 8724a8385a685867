package models

// Sector represents a sector/neighborhood within a municipality
type Sector struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	MunicipioID uint   `gorm:"not null;index" json:"municipio_id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`

	Municipio Municipio `gorm:"foreignKey:MunicipioID" json:"municipio,omitempty"`
}

// TableName specifies the table name
func (Sector) TableName() string {
	return "sectores"
}
