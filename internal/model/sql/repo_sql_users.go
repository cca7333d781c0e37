package sql

import (
	"context"
	"fmt"
	"scribe/internal/entity"
	"strings"
	"time"

	"gorm.io/gorm/clause"
)

// UpsertUser inserts the user or refreshes profile fields keyed by open_id.
// The role column is only overwritten when promoting to admin.
func (r *GormRepository) UpsertUser(ctx context.Context, user *entity.DbUser) error {
	if !r.ready() {
		return errNotInitialised
	}
	if user == nil {
		return fmt.Errorf("user is nil")
	}
	user.OpenID = strings.TrimSpace(user.OpenID)
	if user.OpenID == "" {
		return fmt.Errorf("open id is required for upsert")
	}
	if user.Role == "" {
		user.Role = entity.UserRoleUser
	}
	if user.LastSignedIn == nil {
		now := time.Now().UTC()
		user.LastSignedIn = &now
	}

	columns := []string{"name", "email", "login_method", "last_signed_in", "updated_at"}
	if user.Role == entity.UserRoleAdmin {
		columns = append(columns, "role")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(user).Error
	if err != nil {
		return err
	}

	// reload so ID/role reflect the stored row after a conflict update
	var stored entity.DbUser
	if err := r.db.WithContext(ctx).Where("open_id = ?", user.OpenID).First(&stored).Error; err != nil {
		return err
	}
	*user = stored
	return nil
}

// GetUserByOpenID loads a user by external login id.
func (r *GormRepository) GetUserByOpenID(ctx context.Context, openID string) (*entity.DbUser, error) {
	if !r.ready() {
		return nil, errNotInitialised
	}
	trimmed := strings.TrimSpace(openID)
	if trimmed == "" {
		return nil, nil
	}
	var user entity.DbUser
	if err := r.db.WithContext(ctx).Where("open_id = ?", trimmed).First(&user).Error; err != nil {
		return nil, absent(err)
	}
	return &user, nil
}

// GetUserByID loads a user by ID.
func (r *GormRepository) GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error) {
	if !r.ready() {
		return nil, errNotInitialised
	}
	if id == 0 {
		return nil, nil
	}
	var user entity.DbUser
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, absent(err)
	}
	return &user, nil
}
