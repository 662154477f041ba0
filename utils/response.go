package utils

import (
	"github.com/gin-gonic/gin"
)

// SendError writes the API's single error shape: {"message": "..."}.
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
