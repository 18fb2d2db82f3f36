// Package response shapes error and success bodies the way the public
// API defines them: errors carry a message, the status code, and an
// optional field-level error map.
package response

import "github.com/gin-gonic/gin"

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message":    message,
		"statusCode": statusCode,
	})
}

func ErrorWithFields(c *gin.Context, statusCode int, message string, fields map[string]string) {
	c.JSON(statusCode, gin.H{
		"message":    message,
		"statusCode": statusCode,
		"errors":     fields,
	})
}

func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"message":    message,
		"statusCode": statusCode,
	})
}
