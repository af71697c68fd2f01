package middleware

import (
	"net/http"
	"strings"

	"chaletbook/utils"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// OwnerAuthMiddleware protects the owner dashboard endpoints. A valid bearer
// token is required; its subject is stored as "ownerID" on the context.
func OwnerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
			return
		}
		ownerID, err := utils.ExtractIDFromToken(token)
		if err != nil || ownerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}
		c.Set("ownerID", ownerID)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the token subject when a valid bearer token
// is present, and does nothing otherwise. The guest booking flow works
// unauthenticated; a signed-in caller is simply identified.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if subject, err := utils.ExtractIDFromToken(token); err == nil && subject != "" {
				c.Set("subjectID", subject)
			}
		}
		c.Next()
	}
}
