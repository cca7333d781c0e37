package api

import (
	"context"
	"net/http"
	"scribe/internal/auth"
	"scribe/internal/entity"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Me 返回当前用户，未登录时返回 null
func (h *HTTPHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, entity.UserToSummary(user))
}

// Logout 清除会话 cookie
func (h *HTTPHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, entity.SuccessResponse{Success: true})
}

// OAuthCallback 用授权码完成登录：换取身份、写入用户、签发会话
func (h *HTTPHandler) OAuthCallback(c *gin.Context) {
	if h.oauth == nil {
		ServiceUnavailable(c, "oauth is not configured")
		return
	}
	if h.repo == nil {
		ServiceUnavailable(c, "user repository not available")
		return
	}

	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		MissingField(c, "code")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	identity, err := h.oauth.Authenticate(ctx, code)
	if err != nil {
		logrus.WithError(err).Warn("oauth login failed")
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeLoginFailed, "login failed")
		return
	}

	now := time.Now().UTC()
	user := &entity.DbUser{
		OpenID:       identity.OpenID,
		Name:         strings.TrimSpace(identity.Name),
		Email:        strings.TrimSpace(identity.Email),
		LoginMethod:  strings.TrimSpace(identity.LoginMethod),
		Role:         entity.UserRoleUser,
		LastSignedIn: &now,
	}
	if owner := strings.TrimSpace(h.cfg.OwnerOpenID); owner != "" && owner == identity.OpenID {
		user.Role = entity.UserRoleAdmin
	}

	if err := h.repo.UpsertUser(ctx, user); err != nil {
		logrus.WithError(err).WithField("open_id", identity.OpenID).Error("failed to upsert user")
		ServiceUnavailable(c, "failed to save user")
		return
	}

	token, _, err := h.authManager.GenerateToken(user)
	if err != nil {
		logrus.WithError(err).Error("failed to generate session token")
		InternalError(c, "failed to create session")
		return
	}

	h.setSessionCookie(c, token, int(h.authManager.Expiry().Seconds()))
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user signed in")
	c.Redirect(http.StatusFound, "/")
}

func (h *HTTPHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, value, maxAge, "/", "", h.cfg.SessionCookieSecure, true)
}
