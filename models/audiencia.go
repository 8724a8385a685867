package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audiencia status constants
const (
	AudienciaStatusScheduled = "scheduled"
	AudienciaStatusCompleted = "completed"
	AudienciaStatusCancelled = "cancelled"
	AudienciaStatusPostponed = "postponed"
)

// Audiencia represents a court hearing tracked by a tenant.
// Date and Time are stored canonical: YYYY-MM-DD and HH:mm.
type Audiencia struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	TenantID string `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CaseID   *string `gorm:"type:uuid;index" json:"case_id"`

	CaseLabel string `gorm:"not null" json:"case_label"`
	Court     string `gorm:"not null" json:"court"`
	Type      string `gorm:"not null" json:"type"`
	Date      string `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time      string `gorm:"size:5;not null" json:"time"`        // HH:mm
	Location  string `json:"location"`
	Status    string `gorm:"not null;default:scheduled" json:"status"`

	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate hook to generate UUID
func (a *Audiencia) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// IsValidAudienciaStatus checks if the status is one of the hearing statuses
func IsValidAudienciaStatus(status string) bool {
	switch status {
	case AudienciaStatusScheduled, AudienciaStatusCompleted, AudienciaStatusCancelled, AudienciaStatusPostponed:
		return true
	}
	return false
}

// TableName specifies the table name for Audiencia model
func (Audiencia) TableName() string {
	return "audiencias"
}
