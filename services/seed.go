package services

import (
	"fmt"
	"log"

	"acta_flow_app_go/models"

	"gorm.io/gorm"
)

// planLimits are the per-plan defaults applied when creating tenants
var planLimits = map[string]struct {
	MaxUsers             int
	MaxDocumentsPerMonth int
}{
	models.PlanFree:       {MaxUsers: 1, MaxDocumentsPerMonth: 5},
	models.PlanPro:        {MaxUsers: 5, MaxDocumentsPerMonth: 100},
	models.PlanEnterprise: {MaxUsers: 50, MaxDocumentsPerMonth: 1000},
}

// PlanLimits returns the user and document limits for a plan, falling back
// to the free tier for unknown plans
func PlanLimits(plan string) (maxUsers, maxDocumentsPerMonth int) {
	limits, ok := planLimits[plan]
	if !ok {
		limits = planLimits[models.PlanFree]
	}
	return limits.MaxUsers, limits.MaxDocumentsPerMonth
}

// CreateTenantWithOwner creates a tenant on the given plan and registers the
// user as its owner
func CreateTenantWithOwner(db *gorm.DB, name, plan, userID string) (*models.Tenant, error) {
	maxUsers, maxDocs := PlanLimits(plan)

	tenant := &models.Tenant{
		Name:                 name,
		Plan:                 plan,
		MaxUsers:             maxUsers,
		MaxDocumentsPerMonth: maxDocs,
		Active:               true,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		membership := &models.TenantUser{
			TenantID: tenant.ID,
			UserID:   userID,
			Role:     models.TenantRoleOwner,
		}
		if err := tx.Create(membership).Error; err != nil {
			return fmt.Errorf("failed to create tenant membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	InvalidateTenantCache(userID)
	return tenant, nil
}

// SeedDemoData creates a demo user and tenant for development environments.
// It is idempotent: an existing demo user means data is already seeded.
func SeedDemoData(db *gorm.DB) error {
	const demoEmail = "demo@actaflow.do"

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", demoEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for demo user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := HashPassword("demo1234")
	if err != nil {
		return err
	}

	user := &models.User{
		Email:    demoEmail,
		Password: hashed,
		Name:     "Lic. Demo Abogado",
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	if err := SetUserRole(db, user.ID, models.UserRolePro); err != nil {
		return err
	}

	if _, err := CreateTenantWithOwner(db, "Oficina Jurídica Demo", models.PlanPro, user.ID); err != nil {
		return err
	}

	log.Printf("Seeded demo user %s", demoEmail)
	return nil
}

// SeedDocumentTemplates registers the starter document templates when the
// catalog table is empty
func SeedDocumentTemplates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.DocumentTemplate{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check document templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	templates := []models.DocumentTemplate{
		{
			Slug:      "contrato-de-cuota-litis",
			Nombre:    "Contrato de Cuota Litis",
			Categoria: models.CategoriaExtrajudicial,
			Activo:    true,
		},
		{
			Slug:            "acto-de-venta-notarial",
			Nombre:          "Acto de Venta Notarial",
			Categoria:       models.CategoriaNotarial,
			Activo:          true,
			RequiereNotario: true,
		},
		{
			Slug:      "instancia-de-apelacion",
			Nombre:    "Instancia de Apelación",
			Categoria: models.CategoriaJudicial,
			Activo:    true,
		},
	}

	for i := range templates {
		templates[i].Version = 1
		templates[i].StoragePath = fmt.Sprintf("templates/%s.md", templates[i].Slug)
		if err := db.Create(&templates[i]).Error; err != nil {
			return fmt.Errorf("failed to seed document template %s: %w", templates[i].Slug, err)
		}
	}

	log.Printf("Seeded %d document templates", len(templates))
	return nil
}
