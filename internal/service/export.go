package service

import (
	"context"
	"fmt"
	"scribe/internal/entity"
	"scribe/internal/storage"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// ExportCategory 导出文件所在目录，本地存储时只有它对外提供
	ExportCategory = "exports"

	categorySnapshots = "snapshots"
)

// ExportResult 导出后的存储位置
type ExportResult struct {
	Path string
	URL  string
}

// ExportContent 将内容渲染为 Markdown 并写入对象存储
func (s *ContentService) ExportContent(ctx context.Context, callerID, id uint) (*ExportResult, error) {
	content, project, err := s.assertOwnsContent(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, newError(KindStorageUnavailable, "export storage is not configured", nil)
	}

	key, err := s.store.Save(ctx, []byte(RenderMarkdown(project, content)), storage.SaveOptions{
		Category:  ExportCategory,
		Extension: "md",
		BaseName:  documentBaseName(content),
	})
	if err != nil {
		logrus.WithError(err).WithField("content_id", content.ID).Error("export content failed")
		return nil, storageUnavailable(err)
	}

	return &ExportResult{
		Path: key,
		URL:  storage.PublicURL(s.opts.PublicBaseURL, key),
	}, nil
}

// snapshot 覆盖前保存旧版本，失败只记录日志
func (s *ContentService) snapshot(ctx context.Context, content *entity.DbContent) {
	if s.store == nil || content == nil || strings.TrimSpace(content.Content) == "" {
		return
	}
	key, err := s.store.Save(ctx, []byte(content.Content), storage.SaveOptions{
		Category:     categorySnapshots,
		Extension:    "md",
		BaseName:     documentBaseName(content),
		SkipIfExists: true,
	})
	if err != nil {
		logrus.WithError(err).WithField("content_id", content.ID).Warn("snapshot before regenerate failed")
		return
	}
	logrus.WithFields(logrus.Fields{
		"content_id": content.ID,
		"version":    content.Version,
		"key":        key,
	}).Debug("content snapshot saved")
}

func documentBaseName(content *entity.DbContent) string {
	return fmt.Sprintf("content-%d-v%d", content.ID, content.Version)
}

// RenderMarkdown 标题、元数据列表、正文
func RenderMarkdown(project *entity.DbProject, content *entity.DbContent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", strings.TrimSpace(content.Title))
	if project != nil {
		fmt.Fprintf(&b, "- project: %s\n", project.Name)
		fmt.Fprintf(&b, "- content type: %s\n", project.ContentType)
	}
	fmt.Fprintf(&b, "- status: %s\n", content.Status)
	fmt.Fprintf(&b, "- version: %d\n", content.Version)
	if !content.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "- updated: %s\n", content.UpdatedAt.UTC().Format(time.RFC3339))
	}
	b.WriteString("\n")
	b.WriteString(content.Content)
	if !strings.HasSuffix(content.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}
