package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plazo priority constants
const (
	PlazoPriorityLow    = "low"
	PlazoPriorityMedium = "medium"
	PlazoPriorityHigh   = "high"
)

// Plazo represents a procedural deadline tracked by a tenant.
// DueDate is stored canonical: YYYY-MM-DD.
type Plazo struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	TenantID string  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CaseID   *string `gorm:"type:uuid;index" json:"case_id"`

	CaseLabel string `gorm:"not null" json:"case_label"`
	Type      string `gorm:"not null" json:"type"`
	DueDate   string `gorm:"size:10;not null;index" json:"due_date"` // YYYY-MM-DD
	Priority  string `gorm:"not null;default:medium" json:"priority"`

	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate hook to generate UUID
func (p *Plazo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// IsValidPlazoPriority checks if the priority is one of the deadline priorities
func IsValidPlazoPriority(priority string) bool {
	return priority == PlazoPriorityLow || priority == PlazoPriorityMedium || priority == PlazoPriorityHigh
}

// TableName specifies the table name for Plazo model
func (Plazo) TableName() string {
	return "plazos"
}
