package service

import (
	"context"
	"errors"
	"scribe/internal/entity"
	"scribe/internal/llm"
	"strings"

	"github.com/sirupsen/logrus"
)

// FallbackContent 补全结果缺失或不是文本时写入的内容
const FallbackContent = "No content generated"

// GenerateContent 为调用者自己的项目生成一条新的草稿内容
func (s *ContentService) GenerateContent(ctx context.Context, callerID uint, req entity.ContentGenerateRequest) (*entity.DbContent, string, error) {
	title := strings.TrimSpace(req.Title)
	prompt := req.Prompt
	if title == "" {
		return nil, "", badRequest("title is required")
	}
	// 仅用于判空，原样发送并保存
	if strings.TrimSpace(prompt) == "" {
		return nil, "", badRequest("prompt is required")
	}

	project, err := s.assertOwnsProject(ctx, callerID, req.ProjectID)
	if err != nil {
		return nil, "", err
	}

	if req.TemplateID != nil {
		template, err := s.repo.GetTemplate(ctx, *req.TemplateID)
		if err != nil {
			return nil, "", storageUnavailable(err)
		}
		if template == nil {
			return nil, "", badRequest("template not found")
		}
	}

	systemPrompt := BuildSystemPrompt(project.ContentType, req.Tone, req.Length)
	text, err := s.complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, "", err
	}

	content := &entity.DbContent{
		ProjectID:  project.ID,
		TemplateID: req.TemplateID,
		Title:      title,
		Content:    text,
		Prompt:     prompt,
		Status:     entity.ContentStatusDraft,
		Version:    1,
	}
	if err := s.repo.CreateContent(ctx, content); err != nil {
		logrus.WithError(err).WithField("project_id", project.ID).Error("save generated content failed")
		return nil, "", storageUnavailable(err)
	}

	logrus.WithFields(logrus.Fields{
		"content_id": content.ID,
		"project_id": project.ID,
		"user_id":    callerID,
	}).Info("content generated")
	return content, text, nil
}

// RegenerateContent 用新的提示词重新生成内容并将 version 加一，标题与状态保持不变
func (s *ContentService) RegenerateContent(ctx context.Context, callerID, id uint, req entity.ContentRegenerateRequest) (*entity.DbContent, string, error) {
	prompt := req.Prompt
	if strings.TrimSpace(prompt) == "" {
		return nil, "", badRequest("prompt is required")
	}

	content, project, err := s.assertOwnsContent(ctx, callerID, id)
	if err != nil {
		return nil, "", err
	}

	systemPrompt := BuildSystemPrompt(project.ContentType, req.Tone, req.Length)
	text, err := s.complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, "", err
	}

	s.snapshot(ctx, content)

	// 读后写，没有 CAS 保护
	version := content.Version + 1
	updates := entity.ContentUpdates{
		Content: &text,
		Prompt:  &prompt,
		Version: &version,
	}
	if err := s.repo.UpdateContent(ctx, content.ID, updates); err != nil {
		logrus.WithError(err).WithField("content_id", content.ID).Error("save regenerated content failed")
		return nil, "", storageUnavailable(err)
	}

	content.Content = text
	content.Prompt = prompt
	content.Version = version

	logrus.WithFields(logrus.Fields{
		"content_id": content.ID,
		"version":    version,
		"user_id":    callerID,
	}).Info("content regenerated")
	return content, text, nil
}

// complete 以 [system, user] 两条消息调用补全服务，并取第一个候选的文本
func (s *ContentService) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.completer == nil {
		return "", newError(KindCompletionFailed, "completion service is not configured", nil)
	}

	if s.opts.CompletionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.CompletionTimeout)
		defer cancel()
	}

	completion, err := s.completer.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: userPrompt},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logrus.WithField("provider", s.completer.Name()).Warn("completion timed out")
		}
		return "", newError(KindCompletionFailed, "content generation failed", err)
	}

	text, ok := completion.FirstText()
	if !ok {
		logrus.WithField("provider", s.completer.Name()).Warn("completion returned no text, using fallback")
		return FallbackContent, nil
	}
	return text, nil
}
