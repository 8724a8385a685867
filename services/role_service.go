package services

import (
	"errors"
	"fmt"

	"acta_flow_app_go/models"

	"gorm.io/gorm"
)

// UserRoleInfo carries the resolved global role. The boolean predicates are
// derived from the one Role field at read time, never stored.
type UserRoleInfo struct {
	Role string `json:"role"`
}

// IsFree reports whether the user is on the free tier
func (r UserRoleInfo) IsFree() bool {
	return r.Role == models.UserRoleFree
}

// IsPro reports whether the user is on the pro tier
func (r UserRoleInfo) IsPro() bool {
	return r.Role == models.UserRolePro
}

// IsAdmin reports whether the user is a platform admin
func (r UserRoleInfo) IsAdmin() bool {
	return r.Role == models.UserRoleAdmin
}

// GetUserRole resolves the global role for a user. A missing identity skips
// the query entirely and a missing row is not an error: both default to
// "free". Only a real query failure propagates.
func GetUserRole(db *gorm.DB, userID string) (UserRoleInfo, error) {
	if userID == "" {
		return UserRoleInfo{Role: models.UserRoleFree}, nil
	}

	var row models.UserRole
	err := db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return UserRoleInfo{Role: models.UserRoleFree}, nil
	}
	if err != nil {
		return UserRoleInfo{}, fmt.Errorf("failed to resolve user role: %w", err)
	}

	return UserRoleInfo{Role: row.Role}, nil
}

// SetUserRole upserts the global role row for a user
func SetUserRole(db *gorm.DB, userID, role string) error {
	if !models.IsValidUserRole(role) {
		return fmt.Errorf("invalid role: %s", role)
	}

	var row models.UserRole
	err := db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&models.UserRole{UserID: userID, Role: role}).Error
	}
	if err != nil {
		return fmt.Errorf("failed to load user role: %w", err)
	}

	row.Role = role
	return db.Save(&row).Error
}
