package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Global user role constants (distinct from tenant roles)
const (
	UserRoleFree  = "free"
	UserRolePro   = "pro"
	UserRoleAdmin = "admin"
)

// UserRole holds the platform-wide role for a user, one row per user.
// A user without a row defaults to "free".
type UserRole struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Role   string `gorm:"not null;default:free" json:"role"` // free, pro, admin

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook to generate UUID
func (ur *UserRole) BeforeCreate(tx *gorm.DB) error {
	if ur.ID == "" {
		ur.ID = uuid.New().String()
	}
	return nil
}

// IsValidUserRole checks if the role is one of the global roles
func IsValidUserRole(role string) bool {
	return role == UserRoleFree || role == UserRolePro || role == UserRoleAdmin
}

// TableName specifies the table name for UserRole model
func (UserRole) TableName() string {
	return "user_roles"
}
