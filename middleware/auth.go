package middleware

import (
	"net/http"
	"strings"

	"quill/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired verifies the bearer token and stashes the authenticated user
// id in the request context under "user_id".
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = authHeader[7:]
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errorMessage": "No token provided"})
			return
		}

		userID, err := utils.ValidateJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errorMessage": "Invalid token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
