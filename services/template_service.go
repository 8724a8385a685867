package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"acta_flow_app_go/models"

	"gorm.io/gorm"
)

// GetActiveTemplates returns the active document templates ordered by name.
// Alphabetical order is the listing contract, same as the geography lists.
func GetActiveTemplates(db *gorm.DB) ([]models.DocumentTemplate, error) {
	var templates []models.DocumentTemplate
	err := db.Where("activo = ?", true).
		Order("nombre ASC").
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document templates: %w", err)
	}
	return templates, nil
}

// GetTemplatesByCategoria returns the active templates of one category,
// ordered by name
func GetTemplatesByCategoria(db *gorm.DB, categoria string) ([]models.DocumentTemplate, error) {
	if !models.IsValidCategoria(categoria) {
		return nil, fmt.Errorf("invalid categoria: %s", categoria)
	}

	var templates []models.DocumentTemplate
	err := db.Where("activo = ? AND categoria = ?", true, categoria).
		Order("nombre ASC").
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document templates: %w", err)
	}
	return templates, nil
}

// GetTemplateBySlug returns one template, or (nil, nil) when absent or inactive
func GetTemplateBySlug(db *gorm.DB, slug string) (*models.DocumentTemplate, error) {
	var template models.DocumentTemplate
	err := db.Where("slug = ? AND activo = ?", slug, true).First(&template).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document template: %w", err)
	}
	return &template, nil
}

// GetTemplateBody loads the template content from object storage
func GetTemplateBody(ctx context.Context, template *models.DocumentTemplate) (string, error) {
	reader, _, err := Storage.Get(ctx, template.StoragePath)
	if err != nil {
		return "", fmt.Errorf("failed to load template body: %w", err)
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read template body: %w", err)
	}
	return string(body), nil
}

// SaveTemplate stores a template body and upserts its metadata row. An
// existing slug bumps the version and replaces the stored body.
func SaveTemplate(ctx context.Context, db *gorm.DB, template *models.DocumentTemplate, body string) error {
	if !models.IsValidCategoria(template.Categoria) {
		return fmt.Errorf("invalid categoria: %s", template.Categoria)
	}

	var existing models.DocumentTemplate
	err := db.Where("slug = ?", template.Slug).First(&existing).Error
	switch {
	case err == nil:
		template.ID = existing.ID
		template.Version = existing.Version + 1
		template.CreatedAt = existing.CreatedAt
	case errors.Is(err, gorm.ErrRecordNotFound):
		template.Version = 1
	default:
		return fmt.Errorf("failed to load document template: %w", err)
	}

	if template.StoragePath == "" {
		template.StoragePath = fmt.Sprintf("templates/%s.md", template.Slug)
	}

	content := []byte(body)
	_, err = Storage.UploadReader(ctx, bytes.NewReader(content), template.StoragePath, "text/markdown", int64(len(content)))
	if err != nil {
		return fmt.Errorf("failed to store template body: %w", err)
	}

	if err := db.Save(template).Error; err != nil {
		return fmt.Errorf("failed to save document template: %w", err)
	}
	return nil
}
