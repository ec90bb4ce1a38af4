package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/rates"
	"github.com/valeriaulyamaeva/fxhub-backend/utils"
)

// BestRatesHandler — GET /rates/bestrate.
// Фильтры currencies/exchangers через запятую, пагинация limit (1..100) и
// offset поверх итогового списка пар.
func BestRatesHandler(svc *rates.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		currencies := utils.SplitCSV(c.Query("currencies"))
		exchangers := utils.SplitCSV(c.Query("exchangers"))

		limit := 0
		if limitStr := c.Query("limit"); limitStr != "" {
			v, err := strconv.Atoi(limitStr)
			if err != nil || v < 1 || v > 100 {
				respondError(c, http.StatusBadRequest, "Invalid limit parameter", "limit must be an integer between 1 and 100")
				return
			}
			limit = v
		}
		offset := 0
		if offsetStr := c.Query("offset"); offsetStr != "" {
			v, err := strconv.Atoi(offsetStr)
			if err != nil || v < 0 {
				respondError(c, http.StatusBadRequest, "Invalid offset parameter", "offset must be a non-negative integer")
				return
			}
			offset = v
		}

		results, err := svc.BestRates(c.Request.Context(), currencies, exchangers)
		if err != nil {
			log.Printf("Ошибка расчёта лучших курсов: %v", err)
			respondError(c, http.StatusInternalServerError, "Internal server error", err.Error())
			return
		}

		// Пагинация применяется к списку пар, не к строкам хранилища.
		total := len(results)
		page := results
		start := 0
		var limitMeta interface{}
		if limit > 0 {
			limitMeta = limit
			start = offset
			if start > total {
				start = total
			}
			end := start + limit
			if end > total {
				end = total
			}
			page = results[start:end]
		}

		respondSuccess(c, page, gin.H{
			"total":    total,
			"limit":    limitMeta,
			"offset":   start,
			"returned": len(page),
		})
	}
}

// HistoryHandler — GET /rates/history. Точки для графиков по одной паре,
// сгруппированные по часам или дням.
func HistoryHandler(svc *rates.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		currencyA, currencyB, err := utils.ParsePair(c.Query("currency_pair"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid currency pair format", "Use format: USD/UAH")
			return
		}

		days := 7
		if daysStr := c.Query("days"); daysStr != "" {
			v, err := strconv.Atoi(daysStr)
			if err != nil || v < 1 || v > 30 {
				respondError(c, http.StatusBadRequest, "Invalid days parameter", "days must be an integer between 1 and 30")
				return
			}
			days = v
		}

		interval := c.DefaultQuery("interval", "hour")
		if interval != "hour" && interval != "day" {
			respondError(c, http.StatusBadRequest, "Invalid interval parameter", "interval must be 'hour' or 'day'")
			return
		}

		exchanger := c.Query("exchanger")

		history, err := svc.History(c.Request.Context(), currencyA, currencyB, exchanger, days, interval)
		if err != nil {
			log.Printf("Ошибка выборки истории курсов %s/%s: %v", currencyA, currencyB, err)
			respondError(c, http.StatusInternalServerError, "Internal server error", err.Error())
			return
		}

		now := time.Now().UTC()
		respondSuccess(c, history, gin.H{
			"count":     len(history.DataPoints),
			"from_date": now.AddDate(0, 0, -days).Format(time.RFC3339),
			"to_date":   now.Format(time.RFC3339),
		})
	}
}
