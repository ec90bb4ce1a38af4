package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/rates"
)

// ExchangersListHandler — GET /exchangers/list.
func ExchangersListHandler(svc *rates.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := svc.ExchangerNames(c.Request.Context())
		if err != nil {
			log.Printf("Ошибка получения списка обменников: %v", err)
			respondError(c, http.StatusInternalServerError, "Internal server error", err.Error())
			return
		}
		respondSuccess(c, gin.H{"exchangers": names}, gin.H{"count": len(names)})
	}
}

// ExchangerPairsHandler — GET /exchangers/pairs: какие валютные пары
// поддерживает каждый обменник по его котировкам.
func ExchangerPairsHandler(svc *rates.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		pairs, totalPairs, err := svc.ExchangerPairs(c.Request.Context())
		if err != nil {
			log.Printf("Ошибка построения карты пар обменников: %v", err)
			respondError(c, http.StatusInternalServerError, "Internal server error", err.Error())
			return
		}
		respondSuccess(c, pairs, gin.H{
			"total_exchangers": len(pairs),
			"total_pairs":      totalPairs,
			"generated_at":     time.Now().UTC().Format(time.RFC3339),
		})
	}
}
