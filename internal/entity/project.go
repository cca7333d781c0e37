package entity

import "time"

// DbProject is a user-owned container scoping a content type.
type DbProject struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	ContentType string    `gorm:"column:content_type;type:varchar(64);not null" json:"content_type"`
}

// TableName 指定表名
func (DbProject) TableName() string {
	return "projects"
}

// OwnedBy reports whether the project belongs to the given user.
func (p *DbProject) OwnedBy(userID uint) bool {
	return p != nil && userID != 0 && p.UserID == userID
}
