package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeneratedDocument records one rendered legal act or template document.
// Rows are counted per tenant and calendar month to enforce the plan quota.
type GeneratedDocument struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	TenantID string `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UserID   string `gorm:"type:uuid;not null;index" json:"user_id"`

	ActoSlug   string  `gorm:"index" json:"acto_slug"` // set when generated from the static acts catalog
	TemplateID *string `gorm:"type:uuid;index" json:"template_id"`

	StorageKey string `gorm:"not null" json:"storage_key"`
	FileName   string `gorm:"not null" json:"file_name"`
	FileSize   int64  `json:"file_size"`

	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook to generate UUID
func (g *GeneratedDocument) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for GeneratedDocument model
func (GeneratedDocument) TableName() string {
	return "generated_documents"
}
