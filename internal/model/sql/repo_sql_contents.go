package sql

import (
	"context"
	"fmt"
	"scribe/internal/entity"
)

// ListContentsByProject returns a project's generated contents, newest first.
func (r *GormRepository) ListContentsByProject(ctx context.Context, projectID uint) ([]entity.DbContent, error) {
	if !r.ready() {
		return nil, errNotInitialised
	}
	var contents []entity.DbContent
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").Order("id DESC").
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// CreateContent inserts a generated content row.
func (r *GormRepository) CreateContent(ctx context.Context, content *entity.DbContent) error {
	if !r.ready() {
		return errNotInitialised
	}
	if content == nil {
		return fmt.Errorf("content is nil")
	}
	if content.ProjectID == 0 {
		return fmt.Errorf("content project is required")
	}
	if content.Status == "" {
		content.Status = entity.ContentStatusDraft
	}
	if content.Version <= 0 {
		content.Version = 1
	}
	return r.db.WithContext(ctx).Create(content).Error
}

// GetContent loads a generated content row by ID.
func (r *GormRepository) GetContent(ctx context.Context, id uint) (*entity.DbContent, error) {
	if !r.ready() {
		return nil, errNotInitialised
	}
	if id == 0 {
		return nil, nil
	}
	var content entity.DbContent
	if err := r.db.WithContext(ctx).First(&content, id).Error; err != nil {
		return nil, absent(err)
	}
	return &content, nil
}

// UpdateContent applies only the supplied fields.
func (r *GormRepository) UpdateContent(ctx context.Context, id uint, updates entity.ContentUpdates) error {
	if !r.ready() {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid content id")
	}
	if updates.IsEmpty() {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbContent{}).Where("id = ?", id).Updates(updates.ToMap()).Error
}
