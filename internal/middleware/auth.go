package middleware

import (
	"context"
	"net/http"
	"strings"

	"festivalapi/internal/pkg/jwt"
	"festivalapi/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionChecker verifies that the session behind a token id is still live.
type SessionChecker interface {
	IsActive(ctx context.Context, jti string) (bool, error)
}

// JWTAuth validates the Bearer token and its backing session, then stores
// user_id, is_staff and session_jti on the request context.
func JWTAuth(jwtService *jwt.Service, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, jwtService, sessions)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_staff", claims.IsStaff)
		c.Set("session_jti", claims.ID)

		c.Next()
	}
}

// AuthenticatedOnly is JWTAuth with a 403 instead of a 401: leaving a
// session you are not in is forbidden, not merely unauthorized.
func AuthenticatedOnly(jwtService *jwt.Service, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, jwtService, sessions)
		if !ok {
			response.Error(c, http.StatusForbidden, "NOT_AUTHENTICATED", "Authentication required")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_staff", claims.IsStaff)
		c.Set("session_jti", claims.ID)

		c.Next()
	}
}

// AnonymousOnly rejects requests carrying a live token. Register and login
// are for unauthenticated callers only.
func AnonymousOnly(jwtService *jwt.Service, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, jwtService, sessions); ok {
			response.Error(c, http.StatusForbidden, "ALREADY_AUTHENTICATED", "Already authenticated")
			c.Abort()
			return
		}
		c.Next()
	}
}

// StaffOnly must run after JWTAuth.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_staff") {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Staff access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, jwtService *jwt.Service, sessions SessionChecker) (*jwt.Claims, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, false
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		return nil, false
	}

	claims, err := jwtService.ValidateToken(tokenStr)
	if err != nil {
		return nil, false
	}

	active, err := sessions.IsActive(c.Request.Context(), claims.ID)
	if err != nil || !active {
		return nil, false
	}

	return claims, true
}
