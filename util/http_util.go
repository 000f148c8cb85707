// api/util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/folio/api/logging"
)

// RespondWithError logs the failure and emits {"error": message}.
func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// RespondWithMessage emits {"message": message}. Used for the auth
// surface, whose clients key off the message field.
func RespondWithMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// GetUserIDFromContext returns the authenticated user's id attached by
// the auth middleware, or "" when the route is unauthenticated.
func GetUserIDFromContext(c *gin.Context) string {
	userID, exists := c.Get("requestingUserID")
	if !exists {
		return ""
	}
	id, _ := userID.(string)
	return id
}
