package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Permission keys. Closed set: it must match the authorization backend's
// enumeration exactly, so never add a key here without a migration there.
const (
	PermissionGenerateLegalActs   = "generate_legal_acts"
	PermissionCreateInvoices      = "create_invoices"
	PermissionManageProfessionals = "manage_professionals"
	PermissionAccessSecurity      = "access_security"
	PermissionFullAccess          = "full_access"
	PermissionNotarialActs        = "notarial_acts"
)

// AllPermissions enumerates every known permission key, in the order the
// permission map is evaluated.
var AllPermissions = []string{
	PermissionGenerateLegalActs,
	PermissionCreateInvoices,
	PermissionManageProfessionals,
	PermissionAccessSecurity,
	PermissionFullAccess,
	PermissionNotarialActs,
}

// PermissionMap holds the evaluated permissions for a user. A key that failed
// to evaluate is simply absent and reads as false.
type PermissionMap map[string]bool

// Has reports whether a permission was granted. Absent keys default to false.
func (m PermissionMap) Has(permission string) bool {
	return m[permission]
}

// permissionChecker is swappable so tests can fault individual checks
var permissionChecker = UserHasPermission

// UserHasPermission is the single authorization check: does this user hold
// this permission. Grants combine the global role with the tenant plan:
//
//	admin            -> everything
//	pro role         -> generate_legal_acts, create_invoices
//	pro tenant       -> generate_legal_acts, create_invoices, manage_professionals
//	enterprise tenant-> pro grants plus access_security and notarial_acts
//
// full_access is admin-only by definition.
func UserHasPermission(db *gorm.DB, userID, permission string) (bool, error) {
	if !isKnownPermission(permission) {
		return false, fmt.Errorf("unknown permission: %s", permission)
	}
	if userID == "" {
		return false, nil
	}

	role, err := GetUserRole(db, userID)
	if err != nil {
		return false, err
	}
	if role.IsAdmin() {
		return true, nil
	}
	if permission == PermissionFullAccess {
		return false, nil
	}

	tenant, err := GetCurrentTenant(db, userID)
	if err != nil {
		return false, err
	}

	tenantPro := tenant != nil && (tenant.IsPro() || tenant.IsEnterprise())
	tenantEnterprise := tenant != nil && tenant.IsEnterprise()

	switch permission {
	case PermissionGenerateLegalActs, PermissionCreateInvoices:
		return role.IsPro() || tenantPro, nil
	case PermissionManageProfessionals:
		return tenantPro, nil
	case PermissionAccessSecurity, PermissionNotarialActs:
		return tenantEnterprise, nil
	}

	return false, nil
}

// CheckAllPermissions evaluates every enumerated permission for a user and
// merges the results into one map. Checks run one at a time; an error on one
// key logs, omits that key and continues, it never aborts the rest. The map
// is complete only once this function returns.
func CheckAllPermissions(db *gorm.DB, userID string) PermissionMap {
	permissions := make(PermissionMap, len(AllPermissions))
	if userID == "" {
		return permissions
	}

	for _, key := range AllPermissions {
		granted, err := permissionChecker(db, userID, key)
		if err != nil {
			log.Printf("permission check failed for %s: %v", key, err)
			continue
		}
		permissions[key] = granted
	}

	return permissions
}

func isKnownPermission(permission string) bool {
	for _, key := range AllPermissions {
		if key == permission {
			return true
		}
	}
	return false
}

// EnsureTenantRole verifies a user holds one of the given tenant roles
func EnsureTenantRole(db *gorm.DB, userID string, roles ...string) (bool, error) {
	membership, err := GetTenantMembership(db, userID)
	if err != nil {
		return false, err
	}
	if membership == nil {
		return false, nil
	}

	for _, role := range roles {
		if membership.Role == role {
			return true, nil
		}
	}
	return false, nil
}
