package models

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plan tier constants
const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Tenant represents a law office (organization) using the platform.
// All tenant-scoped data is filtered through tenant_users membership.
type Tenant struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
	Plan string `gorm:"not null;default:free;index" json:"plan"` // free, pro, enterprise

	// Limit pillars (-1 = unlimited)
	MaxUsers              int `gorm:"not null;default:1" json:"max_users"`
	MaxDocumentsPerMonth  int `gorm:"not null;default:10" json:"max_documents_per_month"`

	Settings string `gorm:"type:text;default:'{}'" json:"settings"` // JSON blob, backend-defined keys
	Active   bool   `gorm:"not null;default:true" json:"active"`

	// Relationships
	Members []TenantUser `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate hook to generate UUID and slug
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Slug == "" {
		t.Slug = generateTenantSlug(tx, t.Name)
	}
	return nil
}

// IsFree reports whether the tenant is on the free plan.
// The plan predicates are always derived from the single Plan field,
// never stored, so they cannot drift apart.
func (t *Tenant) IsFree() bool {
	return t.Plan == PlanFree
}

// IsPro reports whether the tenant is on the pro plan.
func (t *Tenant) IsPro() bool {
	return t.Plan == PlanPro
}

// IsEnterprise reports whether the tenant is on the enterprise plan.
func (t *Tenant) IsEnterprise() bool {
	return t.Plan == PlanEnterprise
}

// HasUnlimitedDocuments checks if the monthly document quota is unlimited
func (t *Tenant) HasUnlimitedDocuments() bool {
	return t.MaxDocumentsPerMonth == -1
}

// generateTenantSlug creates a URL-friendly slug from the tenant name
func generateTenantSlug(tx *gorm.DB, name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")

	reg := regexp.MustCompile(`[^a-z0-9-]+`)
	slug = reg.ReplaceAllString(slug, "")

	reg = regexp.MustCompile(`-+`)
	slug = reg.ReplaceAllString(slug, "-")

	slug = strings.Trim(slug, "-")

	if len(slug) > 50 {
		slug = slug[:50]
		slug = strings.TrimRight(slug, "-")
	}

	// Ensure uniqueness
	originalSlug := slug
	counter := 1
	for {
		var count int64
		tx.Model(&Tenant{}).Where("slug = ?", slug).Count(&count)
		if count == 0 {
			break
		}
		slug = originalSlug + "-" + strconv.Itoa(counter)
		counter++
	}

	return slug
}

// TableName specifies the table name for Tenant model
func (Tenant) TableName() string {
	return "tenants"
}
