package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"scribe/internal/entity"
	"time"

	"github.com/gin-gonic/gin"
)

// GetContent 按 ID 读取生成内容，不存在时返回 null
func (h *HTTPHandler) GetContent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	content := h.contents.GetContent(ctx, id)
	if content == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, content)
}

// GenerateContent 调用补全服务生成新的草稿
func (h *HTTPHandler) GenerateContent(c *gin.Context) {
	var req entity.ContentGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c, err)
		return
	}

	_, text, err := h.contents.GenerateContent(c.Request.Context(), CurrentUser(c).ID, req)
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.GeneratedTextResponse{Success: true, Content: text})
}

// UpdateContent 部分更新内容、标题或状态
func (h *HTTPHandler) UpdateContent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// 空请求体等同于不更新任何字段
	var req entity.ContentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		InvalidPayload(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.contents.UpdateContent(ctx, CurrentUser(c).ID, id, req); err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.SuccessResponse{Success: true})
}

// RegenerateContent 用新的提示词重新生成
func (h *HTTPHandler) RegenerateContent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req entity.ContentRegenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c, err)
		return
	}

	_, text, err := h.contents.RegenerateContent(c.Request.Context(), CurrentUser(c).ID, id, req)
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.GeneratedTextResponse{Success: true, Content: text})
}

// ExportContent 导出为 Markdown 文件
func (h *HTTPHandler) ExportContent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	result, err := h.contents.ExportContent(ctx, CurrentUser(c).ID, id)
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.ContentExportResponse{
		Success: true,
		Path:    result.Path,
		URL:     result.URL,
	})
}
