package services

import (
	"errors"
	"fmt"
	"time"

	"acta_flow_app_go/models"

	"gorm.io/gorm"
)

// Limit check error types
var (
	ErrUserLimitReached     = errors.New("user limit reached for current plan")
	ErrDocumentLimitReached = errors.New("monthly document limit reached for current plan")
	ErrTenantInactive       = errors.New("tenant is not active")
)

// GetCurrentTenant resolves the tenant for an authenticated user via the
// tenant_users membership table. Missing identity or missing membership is
// not an error: the caller gets (nil, nil) and renders an anonymous state.
// Results are cached for five minutes per user.
func GetCurrentTenant(db *gorm.DB, userID string) (*models.Tenant, error) {
	if userID == "" {
		return nil, nil
	}

	cacheKey := "tenant:" + userID
	if cached, found := tenantCache.Get(cacheKey); found {
		if cached == nil {
			return nil, nil
		}
		return cached.(*models.Tenant), nil
	}

	var membership models.TenantUser
	err := db.Preload("Tenant").Where("user_id = ?", userID).First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tenantCache.SetDefault(cacheKey, nil)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant: %w", err)
	}

	tenant := membership.Tenant
	tenantCache.SetDefault(cacheKey, &tenant)
	return &tenant, nil
}

// GetTenantMembership returns the membership row (tenant role included) for a
// user, or (nil, nil) when the user belongs to no tenant
func GetTenantMembership(db *gorm.DB, userID string) (*models.TenantUser, error) {
	if userID == "" {
		return nil, nil
	}

	var membership models.TenantUser
	err := db.Preload("Tenant").Where("user_id = ?", userID).First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}

	return &membership, nil
}

// InvalidateTenantCache drops the cached tenant for a user after a mutation
func InvalidateTenantCache(userID string) {
	tenantCache.Delete("tenant:" + userID)
}

// CountMonthlyDocuments counts the documents a tenant generated in the
// current calendar month
func CountMonthlyDocuments(db *gorm.DB, tenantID string) (int64, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var count int64
	err := db.Model(&models.GeneratedDocument{}).
		Where("tenant_id = ? AND created_at >= ?", tenantID, monthStart).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count generated documents: %w", err)
	}

	return count, nil
}

// CheckDocumentQuota verifies the tenant may generate one more document this
// month. Returns ErrDocumentLimitReached when the plan quota is exhausted.
func CheckDocumentQuota(db *gorm.DB, tenant *models.Tenant) error {
	if !tenant.Active {
		return ErrTenantInactive
	}
	if tenant.HasUnlimitedDocuments() {
		return nil
	}

	count, err := CountMonthlyDocuments(db, tenant.ID)
	if err != nil {
		return err
	}

	if count >= int64(tenant.MaxDocumentsPerMonth) {
		return ErrDocumentLimitReached
	}
	return nil
}

// CheckUserLimit verifies the tenant can take one more member.
// Returns ErrUserLimitReached when the plan seat limit is exhausted.
func CheckUserLimit(db *gorm.DB, tenant *models.Tenant) error {
	if tenant.MaxUsers == -1 {
		return nil
	}

	var count int64
	err := db.Model(&models.TenantUser{}).Where("tenant_id = ?", tenant.ID).Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to count tenant members: %w", err)
	}

	if count >= int64(tenant.MaxUsers) {
		return ErrUserLimitReached
	}
	return nil
}

// RecordGeneratedDocument stores the quota-relevant record of a generated document
func RecordGeneratedDocument(db *gorm.DB, doc *models.GeneratedDocument) error {
	if err := db.Create(doc).Error; err != nil {
		return fmt.Errorf("failed to record generated document: %w", err)
	}
	return nil
}
