package api

import (
	"path/filepath"
	"scribe/internal/auth"
	"scribe/internal/config"
	"scribe/internal/llm"
	"scribe/internal/model"
	"scribe/internal/service"
	"scribe/internal/storage"
	"strings"

	"github.com/gin-gonic/gin"
)

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg         config.Config
	repo        model.Repository
	authManager *auth.Manager
	oauth       *auth.OAuthClient

	// 服务层
	contents *service.ContentService
}

// NewHTTPHandler 创建 HTTP 处理器实例，repo、store、completer 均可为 nil
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage, completer llm.Completer) (*HTTPHandler, error) {
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL())
	if err != nil {
		return nil, err
	}

	contentSvc := service.NewContentService(repo, completer, store, service.Options{
		PublicBaseURL:     normalisePublicBase(cfg.StoragePublicBaseURL),
		CompletionTimeout: cfg.LLMTimeout(),
	})

	return &HTTPHandler{
		cfg:         cfg,
		repo:        repo,
		authManager: authManager,
		oauth:       auth.NewOAuthClient(cfg.OAuthServerURL, cfg.OAuthAppID, cfg.OAuthRedirectURL),
		contents:    contentSvc,
	}, nil
}

// RegisterRoutes 注册 /api 下的全部路由
func (h *HTTPHandler) RegisterRoutes(r gin.IRouter) {
	apiGroup := r.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.GET("/me", h.OptionalAuth(), h.Me)
	authGroup.POST("/logout", h.RequireAuth(), h.Logout)

	apiGroup.GET("/oauth/callback", h.OAuthCallback)

	// 公共模板
	apiGroup.GET("/templates", h.ListTemplates)
	apiGroup.GET("/templates/type/:contentType", h.ListTemplatesByType)

	protected := apiGroup.Group("")
	protected.Use(h.RequireAuth())
	protected.GET("/projects", h.ListProjects)
	protected.POST("/projects", h.CreateProject)
	protected.GET("/projects/:id", h.GetProject)
	protected.GET("/projects/:id/contents", h.ListProjectContents)

	protected.POST("/contents/generate", h.GenerateContent)
	protected.GET("/contents/:id", h.GetContent)
	protected.PATCH("/contents/:id", h.UpdateContent)
	protected.POST("/contents/:id/regenerate", h.RegenerateContent)
	protected.POST("/contents/:id/export", h.ExportContent)
}

// RegisterFileRoutes 本地存储时只挂载导出目录，快照不对外提供
func (h *HTTPHandler) RegisterFileRoutes(r gin.IRouter, store storage.Storage) {
	localProvider, ok := store.(storage.LocalBaseDirProvider)
	if !ok || IsRemotePublicBase(h.cfg.StoragePublicBaseURL) {
		return
	}
	prefix := LocalPublicPrefix(h.cfg.StoragePublicBaseURL) + "/" + service.ExportCategory
	r.Static(prefix, filepath.Join(localProvider.LocalBaseDir(), service.ExportCategory))
}

// normalisePublicBase 规范化公共 URL 基础路径
func normalisePublicBase(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = "/files"
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}

// IsRemotePublicBase 公共地址是否指向外部域名（此时不挂载本地静态目录）
func IsRemotePublicBase(value string) bool {
	base := normalisePublicBase(value)
	return strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://")
}

// LocalPublicPrefix 本地静态目录的挂载前缀
func LocalPublicPrefix(value string) string {
	return normalisePublicBase(value)
}
