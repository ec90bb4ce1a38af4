package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/rates"
)

// CurrenciesListHandler — GET /currencies/list: все валюты и пары,
// встречающиеся в котировках.
func CurrenciesListHandler(svc *rates.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		inventory, err := svc.Currencies(c.Request.Context())
		if err != nil {
			log.Printf("Ошибка получения списка валют: %v", err)
			respondError(c, http.StatusInternalServerError, "Internal server error", err.Error())
			return
		}
		respondSuccess(c, inventory, gin.H{
			"currencies_a_count": len(inventory.CurrenciesA),
			"currencies_b_count": len(inventory.CurrenciesB),
			"pairs_count":        len(inventory.Pairs),
		})
	}
}
