package api

import (
	"errors"
	"net/http"
	"scribe/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 错误码定义
const (
	// 通用错误码
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeForbidden          = "ERR_FORBIDDEN"
	ErrCodeNotFound           = "ERR_NOT_FOUND"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"

	// 认证错误码
	ErrCodeSessionExpired = "ERR_SESSION_EXPIRED"
	ErrCodeLoginFailed    = "ERR_LOGIN_FAILED"

	// 业务逻辑错误码
	ErrCodeMissingField     = "ERR_MISSING_FIELD"
	ErrCodeGenerationFailed = "ERR_GENERATION_FAILED"
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails 返回带详情的错误响应
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// 常用错误响应快捷函数

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401 未授权
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Forbidden 403 禁止访问
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, ErrCodeForbidden, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// ServiceUnavailable 503 服务不可用
func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// MissingField 缺少必填字段
func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, field+" is required", gin.H{"field": field})
}

// InvalidPayload 无效的请求体，details 为绑定错误
func InvalidPayload(c *gin.Context, err error) {
	if err == nil {
		ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
		return
	}
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload", err.Error())
}

// statusForError 将服务层错误类型映射为 HTTP 状态码与错误码
func statusForError(err error) (int, string) {
	switch service.KindOf(err) {
	case service.KindBadRequest:
		return http.StatusBadRequest, ErrCodeInvalidRequest
	case service.KindUnauthorized:
		return http.StatusUnauthorized, ErrCodeUnauthorized
	case service.KindForbidden:
		return http.StatusForbidden, ErrCodeForbidden
	case service.KindNotFound:
		return http.StatusNotFound, ErrCodeNotFound
	case service.KindStorageUnavailable:
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable
	case service.KindCompletionFailed:
		return http.StatusBadGateway, ErrCodeGenerationFailed
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// ServiceError 按错误类型返回统一的错误响应
func ServiceError(c *gin.Context, err error) {
	status, code := statusForError(err)

	message := "internal server error"
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}

	if status >= http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"status": status,
		}).Error("request failed")
	}
	ErrorResponse(c, status, code, message)
}
