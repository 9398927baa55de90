package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// authedUserID pulls the user id the auth middleware stored on the context.
func authedUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	if id, ok := userID.(uint); ok {
		return id, true
	}
	return 0, false
}

// parseID parses a route or body identifier. Anything that is not a positive
// decimal integer is malformed.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
