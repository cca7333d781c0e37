package model

import (
	"context"
	"scribe/internal/entity"
)

// Repository 定义数据库操作接口
//
// 读取操作在记录不存在时返回 (nil, nil)，不返回错误。
type Repository interface {
	// 用户
	UpsertUser(ctx context.Context, user *entity.DbUser) error
	GetUserByOpenID(ctx context.Context, openID string) (*entity.DbUser, error)
	GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error)

	// 项目
	ListProjectsByUser(ctx context.Context, userID uint) ([]entity.DbProject, error)
	GetProject(ctx context.Context, id uint) (*entity.DbProject, error)
	CreateProject(ctx context.Context, project *entity.DbProject) error

	// 生成内容
	ListContentsByProject(ctx context.Context, projectID uint) ([]entity.DbContent, error)
	CreateContent(ctx context.Context, content *entity.DbContent) error
	GetContent(ctx context.Context, id uint) (*entity.DbContent, error)
	UpdateContent(ctx context.Context, id uint, updates entity.ContentUpdates) error

	// 模板
	ListPublicTemplates(ctx context.Context, contentType string) ([]entity.DbTemplate, error)
	GetTemplate(ctx context.Context, id uint) (*entity.DbTemplate, error)
	FindTemplate(ctx context.Context, name, contentType string) (*entity.DbTemplate, error)
	CreateTemplate(ctx context.Context, template *entity.DbTemplate) error
}
