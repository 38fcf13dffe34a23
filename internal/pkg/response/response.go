package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes data as the whole response body.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"code":    code,
		"message": message,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"code":    code,
		"message": message,
		"errors":  details,
	})
}

// Abort writes an error body and stops the handler chain.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"code":    code,
		"message": message,
	})
}

// Internal attaches err to the context for the error logger and writes a generic 500 body.
func Internal(c *gin.Context, code string, err error) {
	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, code, "Internal server error")
}
