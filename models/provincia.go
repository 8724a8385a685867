package models

// Provincia represents a Dominican province, the top of the geography chain.
// Reference data: seeded once, treated as near-static.
type Provincia struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Code     string `gorm:"size:10;not null;uniqueIndex" json:"code"` // ONE code (e.g. "01" Distrito Nacional)
	Name     string `gorm:"size:100;not null" json:"name"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`

	Municipios []Municipio `gorm:"foreignKey:ProvinciaID" json:"municipios,omitempty"`
}

// TableName specifies the table name
func (Provincia) TableName() string {
	return "provincias"
}
