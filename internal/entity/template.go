package entity

import "time"

// DbTemplate is a reusable system-prompt preset.
type DbTemplate struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Name         string      `gorm:"column:name;type:varchar(255);not null" json:"name"`
	ContentType  string      `gorm:"column:content_type;type:varchar(64);index;not null" json:"content_type"`
	SystemPrompt string      `gorm:"column:system_prompt;type:text;not null" json:"system_prompt"`
	Placeholders StringArray `gorm:"column:placeholders;type:json" json:"placeholders"`
	IsPublic     bool        `gorm:"column:is_public;not null;default:false" json:"is_public"`
}

// TableName 指定表名
func (DbTemplate) TableName() string {
	return "templates"
}
