package middleware

import (
	"net/http"
	"strings"

	"clinicport/utils"

	"github.com/gin-gonic/gin"
)

// RequesterKey is the context key under which RequireAuth stores the verified
// subject email.
const RequesterKey = "requesterEmail"

// RequireAuth verifies the bearer token and stores the requester email in the
// context. A missing header aborts with 401; a token that fails verification
// aborts with 403.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := utils.SubjectFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(RequesterKey, subject)
		c.Next()
	}
}

// Requester returns the verified requester email set by RequireAuth.
func Requester(c *gin.Context) (string, bool) {
	val, ok := c.Get(RequesterKey)
	if !ok {
		return "", false
	}
	email, ok := val.(string)
	return email, ok && email != ""
}
