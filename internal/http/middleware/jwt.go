package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier validates a raw bearer token and returns its subject.
type TokenVerifier interface {
	Subject(raw string) (string, error)
}

// JWT rejects requests without a valid bearer token and stores the token
// subject under "user_id".
func JWT(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Missing bearer"})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		sub, err := v.Subject(raw)
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return
		}
		c.Set("user_id", sub)
		c.Next()
	}
}
