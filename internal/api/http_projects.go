package api

import (
	"context"
	"net/http"
	"scribe/internal/entity"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// parseIDParam 解析路径中的数字 ID，失败时已写入 400 响应
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid id", gin.H{"param": name})
		return 0, false
	}
	return uint(id), true
}

// ListProjects 当前用户的项目列表
func (h *HTTPHandler) ListProjects(c *gin.Context) {
	user := CurrentUser(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, entity.ProjectListResponse{
		Projects: h.contents.ListProjects(ctx, user.ID),
	})
}

// CreateProject 创建项目，归属者始终是当前用户
func (h *HTTPHandler) CreateProject(c *gin.Context) {
	var req entity.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.contents.CreateProject(ctx, CurrentUser(c).ID, req); err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.SuccessResponse{Success: true})
}

// GetProject 按 ID 读取项目，不存在时返回 null
func (h *HTTPHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	project := h.contents.GetProject(ctx, id)
	if project == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, project)
}

// ListProjectContents 项目下的生成内容
func (h *HTTPHandler) ListProjectContents(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, entity.ContentListResponse{
		Contents: h.contents.ListContents(ctx, id),
	})
}
