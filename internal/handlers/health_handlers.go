package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/rates"
)

// HealthHandler — GET /health: живость сервиса плюс проверка связи с БД.
func HealthHandler(svc *rates.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "connected"
		if err := svc.Ping(c.Request.Context()); err != nil {
			log.Printf("Проверка БД в /health не прошла: %v", err)
			dbStatus = "error"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  dbStatus,
			"version":   Version,
		})
	}
}
