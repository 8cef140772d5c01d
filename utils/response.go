// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError sends a uniform error payload. Handlers never leak
// internal error strings for 5xx responses.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
