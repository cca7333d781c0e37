package sql

import (
	"context"
	"fmt"
	"scribe/internal/entity"
	"strings"
)

// ListPublicTemplates returns public templates, optionally filtered by content type.
func (r *GormRepository) ListPublicTemplates(ctx context.Context, contentType string) ([]entity.DbTemplate, error) {
	if !r.ready() {
		return nil, errNotInitialised
	}
	query := r.db.WithContext(ctx).Where("is_public = ?", true)
	if trimmed := strings.TrimSpace(contentType); trimmed != "" {
		query = query.Where("content_type = ?", trimmed)
	}
	var templates []entity.DbTemplate
	if err := query.Order("id ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplate loads a template by ID.
func (r *GormRepository) GetTemplate(ctx context.Context, id uint) (*entity.DbTemplate, error) {
	if !r.ready() {
		return nil, errNotInitialised
	}
	if id == 0 {
		return nil, nil
	}
	var template entity.DbTemplate
	if err := r.db.WithContext(ctx).First(&template, id).Error; err != nil {
		return nil, absent(err)
	}
	return &template, nil
}

// FindTemplate looks a template up by its name within a content type.
func (r *GormRepository) FindTemplate(ctx context.Context, name, contentType string) (*entity.DbTemplate, error) {
	if !r.ready() {
		return nil, errNotInitialised
	}
	var template entity.DbTemplate
	err := r.db.WithContext(ctx).
		Where("name = ? AND content_type = ?", strings.TrimSpace(name), strings.TrimSpace(contentType)).
		First(&template).Error
	if err != nil {
		return nil, absent(err)
	}
	return &template, nil
}

// CreateTemplate inserts a template.
func (r *GormRepository) CreateTemplate(ctx context.Context, template *entity.DbTemplate) error {
	if !r.ready() {
		return errNotInitialised
	}
	if template == nil {
		return fmt.Errorf("template is nil")
	}
	return r.db.WithContext(ctx).Create(template).Error
}
