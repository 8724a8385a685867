package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant role constants
const (
	TenantRoleOwner  = "owner"
	TenantRoleAdmin  = "admin"
	TenantRoleMember = "member"
)

// TenantUser links a user to a tenant with a tenant-scoped role
type TenantUser struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TenantID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_tenant_user" json:"tenant_id"`
	UserID   string `gorm:"type:uuid;not null;index;uniqueIndex:idx_tenant_user" json:"user_id"`
	Role     string `gorm:"not null;default:member" json:"role"` // owner, admin, member

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook to generate UUID
func (tu *TenantUser) BeforeCreate(tx *gorm.DB) error {
	if tu.ID == "" {
		tu.ID = uuid.New().String()
	}
	return nil
}

// IsValidTenantRole checks if the role is one of the tenant roles
func IsValidTenantRole(role string) bool {
	return role == TenantRoleOwner || role == TenantRoleAdmin || role == TenantRoleMember
}

// TableName specifies the table name for TenantUser model
func (TenantUser) TableName() string {
	return "tenant_users"
}
