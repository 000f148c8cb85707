// api/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/folio/api/auth"
	logger "github.com/dev-mohitbeniwal/folio/api/logging"
)

const principalKey = "principal"

// TokenVerifier verifies a bearer token and yields the principal it
// encodes. Satisfied by auth.TokenService.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Principal, error)
}

// AuthRequired guards protected routes. It expects an
// "Authorization: Bearer <token>" header, verifies the token and
// attaches the resulting principal to the request context. Rejection
// and continuation are the only two outcomes.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			logger.Warn("Malformed Authorization header", zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		principal, err := verifier.Verify(tokenString)
		if err != nil {
			logger.Warn("Token verification failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Set("requestingUserID", principal.UserID)
		c.Next()
	}
}

// RequireRole enforces an exact role match. It must run after
// AuthRequired; a missing principal is treated as an unauthorized
// request rather than a panic.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		if principal.Role != role {
			logger.Warn("Insufficient role",
				zap.String("userID", principal.UserID),
				zap.String("role", principal.Role),
				zap.String("required", role))
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetPrincipal returns the principal attached by AuthRequired.
func GetPrincipal(c *gin.Context) (*auth.Principal, bool) {
	val, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := val.(*auth.Principal)
	return principal, ok
}
