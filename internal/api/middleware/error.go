package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts panics below it into a JSON 500 so one bad request
// cannot take the server down. String panics surface as the message; anything
// else gets a generic one.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "internal error"
		if s, ok := recovered.(string); ok {
			msg = s
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": msg,
			},
		})
	})
}
