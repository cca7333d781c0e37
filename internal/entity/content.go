package entity

import (
	"strings"
	"time"
)

// ContentStatus 内容发布状态
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
)

// ParseContentStatus 校验并规范化状态值
func ParseContentStatus(value string) (ContentStatus, bool) {
	switch status := ContentStatus(strings.ToLower(strings.TrimSpace(value))); status {
	case ContentStatusDraft, ContentStatusPublished, ContentStatusArchived:
		return status, true
	default:
		return "", false
	}
}

// DbContent stores one versioned text artifact produced for a project.
type DbContent struct {
	ID         uint          `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	ProjectID  uint          `gorm:"column:project_id;index;not null" json:"project_id"`
	TemplateID *uint         `gorm:"column:template_id" json:"template_id"`
	Title      string        `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content    string        `gorm:"column:content;type:text;not null" json:"content"`
	Prompt     string        `gorm:"column:prompt;type:text" json:"prompt"`
	Status     ContentStatus `gorm:"column:status;type:varchar(16);not null;default:draft" json:"status"`
	Version    int           `gorm:"column:version;not null;default:1" json:"version"`
}

// TableName 指定表名
func (DbContent) TableName() string {
	return "generated_contents"
}
