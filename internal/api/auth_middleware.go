package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"scribe/internal/auth"
	"scribe/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	currentUserContextKey = "current-user"
)

// sessionToken 优先读取会话 cookie，其次是 Bearer 授权头
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil {
		if token := strings.TrimSpace(cookie); token != "" {
			return token
		}
	}

	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// authFailure 描述认证失败时的响应
type authFailure struct {
	status  int
	code    string
	message string
}

// resolveUser 校验会话并加载用户
func (h *HTTPHandler) resolveUser(c *gin.Context) (*entity.DbUser, *authFailure) {
	tokenString := sessionToken(c)
	if tokenString == "" {
		return nil, &authFailure{http.StatusUnauthorized, ErrCodeUnauthorized, "login required"}
	}

	claims, err := h.authManager.ParseToken(tokenString)
	if err != nil {
		logrus.WithError(err).Warn("failed to parse session token")
		return nil, &authFailure{http.StatusUnauthorized, ErrCodeSessionExpired, "session is invalid or expired"}
	}

	if h.repo == nil {
		return nil, &authFailure{http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "user repository not available"}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.repo.GetUserByOpenID(ctx, claims.OpenID)
	if err != nil {
		logrus.WithError(err).WithField("open_id", claims.OpenID).Error("failed to load user")
		return nil, &authFailure{http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "failed to verify user"}
	}
	if user == nil {
		return nil, &authFailure{http.StatusUnauthorized, ErrCodeUnauthorized, "user not found"}
	}
	return user, nil
}

// RequireAuth 会话认证中间件，失败时在进入处理函数前返回
func (h *HTTPHandler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, failure := h.resolveUser(c)
		if failure != nil {
			c.AbortWithStatusJSON(failure.status, APIError{
				Code:    failure.code,
				Message: failure.message,
			})
			return
		}
		c.Set(currentUserContextKey, user)
		c.Next()
	}
}

// OptionalAuth 有有效会话时注入用户，否则匿名继续
func (h *HTTPHandler) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, failure := h.resolveUser(c); failure == nil {
			c.Set(currentUserContextKey, user)
		}
		c.Next()
	}
}

// CurrentUser 从上下文获取当前认证用户
func CurrentUser(c *gin.Context) *entity.DbUser {
	value, exists := c.Get(currentUserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*entity.DbUser)
	if !ok {
		return nil
	}
	return user
}
