package models

// Municipio represents a municipality within a province
type Municipio struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	ProvinciaID uint   `gorm:"not null;index" json:"provincia_id"`
	Code        string `gorm:"size:10;not null" json:"code"`
	Name        string `gorm:"size:100;not null" json:"name"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`

	Provincia Provincia `gorm:"foreignKey:ProvinciaID" json:"provincia,omitempty"`
	Sectores  []Sector  `gorm:"foreignKey:MunicipioID" json:"sectores,omitempty"`
}

// TableName specifies the table name
func (Municipio) TableName() string {
	return "municipios"
}
