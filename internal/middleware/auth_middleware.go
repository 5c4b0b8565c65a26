package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/auth"
)

// SessionCookieName is the fallback token carrier for the dashboard;
// API clients use the Authorization header.
const SessionCookieName = "etshub_session"

// Context keys set by the auth middleware.
const (
	ContextAdminID = "adminID"
	ContextEmail   = "adminEmail"
)

// AuthMiddleware validates dashboard session tokens
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// tokenFromRequest pulls the session token from the Authorization
// header or, failing that, the session cookie.
func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, err := auth.ExtractBearerToken(header); err == nil {
			return token
		}
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// RequireAdmin rejects the request with 401 unless it carries a valid
// session token. Rejection happens before any handler or store access.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// OptionalAdmin validates a session token when one is present but never
// rejects. Public endpoints use it to unlock admin-only query options,
// like listing inactive job postings.
func (m *AuthMiddleware) OptionalAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenFromRequest(c); token != "" {
			if claims, err := m.jwtService.ValidateToken(token); err == nil {
				c.Set(ContextAdminID, claims.AdminID)
				c.Set(ContextEmail, claims.Email)
			}
		}
		c.Next()
	}
}

// IsAuthenticated reports whether the auth middleware identified an admin.
func IsAuthenticated(c *gin.Context) bool {
	_, exists := c.Get(ContextAdminID)
	return exists
}

// AdminID returns the authenticated admin's ID, or 0 when anonymous.
func AdminID(c *gin.Context) int64 {
	if v, exists := c.Get(ContextAdminID); exists {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
