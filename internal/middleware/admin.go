package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bimcat/catalog-api/internal/service"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
	"github.com/bimcat/catalog-api/pkg/response"
)

// ContextSessionKey is the gin context key storing admin session claims.
const ContextSessionKey = "adminSession"

// Admin protects dashboard routes. The session token is taken from the
// adminAuth cookie set at login, or from a Bearer header for non-browser
// clients.
func Admin(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	if cookieName == "" {
		cookieName = "adminAuth"
	}
	return func(c *gin.Context) {
		token := sessionToken(c, cookieName)
		if token == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "No autenticado"))
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, claims)
		c.Next()
	}
}

func sessionToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
