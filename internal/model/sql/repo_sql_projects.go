package sql

import (
	"context"
	"fmt"
	"scribe/internal/entity"
)

// ListProjectsByUser returns the user's projects, newest first.
func (r *GormRepository) ListProjectsByUser(ctx context.Context, userID uint) ([]entity.DbProject, error) {
	if !r.ready() {
		return nil, errNotInitialised
	}
	var projects []entity.DbProject
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject loads a project by ID.
func (r *GormRepository) GetProject(ctx context.Context, id uint) (*entity.DbProject, error) {
	if !r.ready() {
		return nil, errNotInitialised
	}
	if id == 0 {
		return nil, nil
	}
	var project entity.DbProject
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, absent(err)
	}
	return &project, nil
}

// CreateProject persists a new project.
func (r *GormRepository) CreateProject(ctx context.Context, project *entity.DbProject) error {
	if !r.ready() {
		return errNotInitialised
	}
	if project == nil {
		return fmt.Errorf("project is nil")
	}
	if project.UserID == 0 {
		return fmt.Errorf("project owner is required")
	}
	return r.db.WithContext(ctx).Create(project).Error
}
