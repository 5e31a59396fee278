package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sesgrg/sesg-backend/internal/api/http/respond"
	"github.com/sesgrg/sesg-backend/internal/auth"
	"github.com/sesgrg/sesg-backend/internal/auth/domain"
	"github.com/sesgrg/sesg-backend/internal/auth/service"
	"github.com/sesgrg/sesg-backend/internal/logging"
)

// BearerAuthMiddleware validates the bearer token through the provider and
// stores the resulting identity on the context.
func BearerAuthMiddleware(provider service.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			respond.Unauthorized(c, "Not authenticated")
			return
		}

		id, err := provider.Authorize(c.Request.Context(), token)
		if err != nil {
			logging.FromContext(c.Request.Context()).WithError(err).Debug("bearer token rejected")
			respond.Unauthorized(c, "Could not validate credentials")
			return
		}

		auth.SetIdentity(c, id)
		c.Request = c.Request.WithContext(logging.WithSubject(c.Request.Context(), id.Subject))

		c.Next()
	}
}

// RequireRole rejects identities whose role differs from role.
// It must run after BearerAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.CurrentIdentity(c)
		if !ok {
			respond.Unauthorized(c, "Not authenticated")
			return
		}
		if id.Role != role {
			respond.Detail(c, http.StatusForbidden, "Not enough permissions")
			return
		}
		c.Next()
	}
}

// RequireAdmin chains bearer validation with the admin role check.
func RequireAdmin(provider service.Provider) []gin.HandlerFunc {
	return []gin.HandlerFunc{BearerAuthMiddleware(provider), RequireRole(domain.RoleAdmin)}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.EqualFold(bearerToken[:7], "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}
