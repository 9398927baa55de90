package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS mirrors the request origin back when it is on the allowlist from
// CORS_ALLOWED_ORIGINS (comma separated). An unset allowlist admits every
// origin, which is what the public post page needs.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		requestOrigin := c.GetHeader("Origin")

		if allowedOrigins == "" {
			c.Header("Access-Control-Allow-Origin", "*")
		} else {
			for _, origin := range strings.Split(allowedOrigins, ",") {
				if strings.TrimSpace(origin) == requestOrigin {
					c.Header("Access-Control-Allow-Origin", requestOrigin)
					c.Header("Access-Control-Allow-Credentials", "true")
					break
				}
			}
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
