package api

import (
	"context"
	"net/http"
	"scribe/internal/entity"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ListTemplates 公共模板列表
func (h *HTTPHandler) ListTemplates(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, entity.TemplateListResponse{
		Templates: h.contents.ListTemplates(ctx, ""),
	})
}

// ListTemplatesByType 按内容类型过滤公共模板
func (h *HTTPHandler) ListTemplatesByType(c *gin.Context) {
	contentType := strings.TrimSpace(c.Param("contentType"))
	if contentType == "" {
		MissingField(c, "contentType")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, entity.TemplateListResponse{
		Templates: h.contents.ListTemplates(ctx, contentType),
	})
}
