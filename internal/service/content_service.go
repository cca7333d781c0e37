package service

import (
	"context"
	"scribe/internal/entity"
	"scribe/internal/llm"
	"scribe/internal/model"
	"scribe/internal/storage"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Options 内容服务的可选参数
type Options struct {
	// PublicBaseURL 导出文件的公共访问前缀
	PublicBaseURL string
	// CompletionTimeout 单次补全调用的超时，0 表示只受请求上下文约束
	CompletionTimeout time.Duration
}

// ContentService 项目与生成内容的业务逻辑
//
// repo、completer、store 均可能为 nil：读取降级为空结果，写入返回对应的错误类型。
type ContentService struct {
	repo      model.Repository
	completer llm.Completer
	store     storage.Storage
	opts      Options
}

// NewContentService 创建内容服务实例
func NewContentService(repo model.Repository, completer llm.Completer, store storage.Storage, opts Options) *ContentService {
	return &ContentService{
		repo:      repo,
		completer: completer,
		store:     store,
		opts:      opts,
	}
}

// ListProjects 返回用户自己的项目
func (s *ContentService) ListProjects(ctx context.Context, ownerID uint) []entity.DbProject {
	if s.repo == nil {
		return []entity.DbProject{}
	}
	projects, err := s.repo.ListProjectsByUser(ctx, ownerID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", ownerID).Warn("list projects failed")
		return []entity.DbProject{}
	}
	if projects == nil {
		return []entity.DbProject{}
	}
	return projects
}

// GetProject 按 ID 读取项目，不做归属校验
func (s *ContentService) GetProject(ctx context.Context, id uint) *entity.DbProject {
	if s.repo == nil {
		return nil
	}
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("project_id", id).Warn("get project failed")
		return nil
	}
	return project
}

// CreateProject 创建归属于 ownerID 的项目
func (s *ContentService) CreateProject(ctx context.Context, ownerID uint, req entity.ProjectCreateRequest) (*entity.DbProject, error) {
	name := strings.TrimSpace(req.Name)
	contentType := strings.TrimSpace(req.ContentType)
	if name == "" {
		return nil, badRequest("name is required")
	}
	if contentType == "" {
		return nil, badRequest("content_type is required")
	}
	if ownerID == 0 {
		return nil, newError(KindUnauthorized, "login required", nil)
	}
	if s.repo == nil {
		return nil, storageUnavailable(nil)
	}

	project := &entity.DbProject{
		UserID:      ownerID,
		Name:        name,
		ContentType: contentType,
	}
	if req.Description != nil {
		project.Description = strings.TrimSpace(*req.Description)
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		logrus.WithError(err).WithField("user_id", ownerID).Error("create project failed")
		return nil, storageUnavailable(err)
	}

	logrus.WithFields(logrus.Fields{
		"project_id":   project.ID,
		"user_id":      ownerID,
		"content_type": contentType,
	}).Info("project created")
	return project, nil
}

// ListContents 返回项目下的生成内容
func (s *ContentService) ListContents(ctx context.Context, projectID uint) []entity.DbContent {
	if s.repo == nil {
		return []entity.DbContent{}
	}
	contents, err := s.repo.ListContentsByProject(ctx, projectID)
	if err != nil {
		logrus.WithError(err).WithField("project_id", projectID).Warn("list contents failed")
		return []entity.DbContent{}
	}
	if contents == nil {
		return []entity.DbContent{}
	}
	return contents
}

// GetContent 按 ID 读取生成内容，不做归属校验
func (s *ContentService) GetContent(ctx context.Context, id uint) *entity.DbContent {
	if s.repo == nil {
		return nil
	}
	content, err := s.repo.GetContent(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("content_id", id).Warn("get content failed")
		return nil
	}
	return content
}

// ListTemplates 返回公共模板，contentType 为空时不过滤
func (s *ContentService) ListTemplates(ctx context.Context, contentType string) []entity.DbTemplate {
	if s.repo == nil {
		return []entity.DbTemplate{}
	}
	templates, err := s.repo.ListPublicTemplates(ctx, strings.TrimSpace(contentType))
	if err != nil {
		logrus.WithError(err).WithField("content_type", contentType).Warn("list templates failed")
		return []entity.DbTemplate{}
	}
	if templates == nil {
		return []entity.DbTemplate{}
	}
	return templates
}

// UpdateContent 部分更新生成内容，version 不变
func (s *ContentService) UpdateContent(ctx context.Context, callerID, id uint, req entity.ContentUpdateRequest) error {
	updates := entity.ContentUpdates{
		Title:   req.Title,
		Content: req.Content,
	}
	if req.Status != nil {
		status, ok := entity.ParseContentStatus(*req.Status)
		if !ok {
			return badRequest("status must be one of draft, published, archived")
		}
		updates.Status = &status
	}

	if _, _, err := s.assertOwnsContent(ctx, callerID, id); err != nil {
		return err
	}
	if updates.IsEmpty() {
		return nil
	}

	if err := s.repo.UpdateContent(ctx, id, updates); err != nil {
		logrus.WithError(err).WithField("content_id", id).Error("update content failed")
		return storageUnavailable(err)
	}
	return nil
}

// assertOwnsProject 读取项目并校验归属，项目不存在同样视为无权访问
func (s *ContentService) assertOwnsProject(ctx context.Context, callerID, projectID uint) (*entity.DbProject, error) {
	if s.repo == nil {
		return nil, storageUnavailable(nil)
	}
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, storageUnavailable(err)
	}
	if !project.OwnedBy(callerID) {
		return nil, forbidden("project not found or access denied")
	}
	return project, nil
}

// assertOwnsContent 所有修改内容的操作共用的归属校验
func (s *ContentService) assertOwnsContent(ctx context.Context, callerID, contentID uint) (*entity.DbContent, *entity.DbProject, error) {
	if s.repo == nil {
		return nil, nil, storageUnavailable(nil)
	}
	content, err := s.repo.GetContent(ctx, contentID)
	if err != nil {
		return nil, nil, storageUnavailable(err)
	}
	if content == nil {
		return nil, nil, notFound("content not found")
	}
	project, err := s.assertOwnsProject(ctx, callerID, content.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return content, project, nil
}
