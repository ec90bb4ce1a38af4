package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version отдаётся в корневом эндпоинте и в /health.
const Version = "1.0.0"

func respondSuccess(c *gin.Context, data interface{}, meta gin.H) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"meta":    meta,
	})
}

func respondError(c *gin.Context, status int, errText, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   errText,
		"message": message,
	})
}
