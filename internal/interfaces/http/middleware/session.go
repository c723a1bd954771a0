package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/member"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/session"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/interfaces/http/dto"
)

// Context keys set by the session middleware
const (
	ContextMemberKey    = "current_member"
	ContextSessionIDKey = "current_session_id"
)

// Session resolves the session cookie and loads the logged-in member into
// the request context. Requests without a valid session pass through
// unauthenticated; access control is enforced by RequireMember/RequireAdmin.
func Session(manager *session.Manager, members member.Repository, cookieName string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		sess, err := manager.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				logger.Warn("session lookup failed", zap.Error(err))
			}
			c.Next()
			return
		}

		m, err := members.FindByID(c.Request.Context(), sess.MemberID)
		if err != nil {
			// Member deleted after login; treat the session as dead
			if !errors.Is(err, shared.ErrNotFound) {
				logger.Warn("member lookup for session failed", zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set(ContextMemberKey, m)
		c.Set(ContextSessionIDKey, sess.ID)
		c.Next()
	}
}

// GetMember returns the logged-in member, or nil when unauthenticated
func GetMember(c *gin.Context) *member.Member {
	v, ok := c.Get(ContextMemberKey)
	if !ok {
		return nil
	}
	m, ok := v.(*member.Member)
	if !ok {
		return nil
	}
	return m
}

// GetMemberID returns the logged-in member's ID, or uuid.Nil
func GetMemberID(c *gin.Context) uuid.UUID {
	if m := GetMember(c); m != nil {
		return m.ID
	}
	return uuid.Nil
}

// GetSessionID returns the resolved session ID, or ""
func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextSessionIDKey)
}

// RequireMember aborts with 401 when the request has no logged-in member
func RequireMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetMember(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.ErrCodeUnauthorized,
				"로그인이 필요한 서비스입니다.",
			))
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 401 unless the request carries a session
// whose member has back-office access. Non-admin members also get 401;
// the back office does not reveal its existence to them.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		m := GetMember(c)
		if m == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.ErrCodeUnauthorized,
				"로그인이 필요한 서비스입니다.",
			))
			return
		}
		if !m.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.ErrCodeUnauthorized,
				"관리자만 접근할 수 있습니다.",
			))
			return
		}
		c.Next()
	}
}
