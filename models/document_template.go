package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document template category constants
const (
	CategoriaJudicial      = "judicial"
	CategoriaExtrajudicial = "extrajudicial"
	CategoriaNotarial      = "notarial"
)

// DocumentTemplate represents a reusable document template for generating legal documents.
// The template body lives in object storage at StoragePath; this row holds the metadata.
type DocumentTemplate struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	Nombre    string `gorm:"not null;index" json:"nombre"`
	Categoria string `gorm:"not null;index" json:"categoria"` // judicial, extrajudicial, notarial

	StoragePath string `gorm:"not null" json:"storage_path"`
	Version     int    `gorm:"not null;default:1" json:"version"`
	Activo      bool   `gorm:"not null;default:true" json:"activo"`

	RequiereNotario  bool `gorm:"not null;default:false" json:"requiere_notario"`
	RequiereContrato bool `gorm:"not null;default:false" json:"requiere_contrato"`

	// JSON columns, shape owned by the document-generation views
	RolesPartes       string `gorm:"type:text;default:'[]'" json:"roles_partes"`
	CamposAdicionales string `gorm:"type:text;default:'[]'" json:"campos_adicionales"`
	Metadata          string `gorm:"type:text;default:'{}'" json:"metadata"`
}

// BeforeCreate hook to generate UUID
func (t *DocumentTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for DocumentTemplate model
func (DocumentTemplate) TableName() string {
	return "document_templates"
}

// IsValidCategoria checks if the categoria is one of the known document categories
func IsValidCategoria(categoria string) bool {
	return categoria == CategoriaJudicial || categoria == CategoriaExtrajudicial || categoria == CategoriaNotarial
}
