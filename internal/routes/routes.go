package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/handlers"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/metrics"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/rates"
)

// SetupRouter собирает все маршруты API поверх сервиса котировок.
func SetupRouter(svc *rates.Service) *gin.Engine {
	r := gin.Default()
	r.Use(handlers.CORSMiddleware())
	r.Use(handlers.RequestIDMiddleware())
	r.Use(metrics.Middleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "FX Hub Backend API", "version": handlers.Version})
	})
	r.GET("/health", handlers.HealthHandler(svc))

	r.GET("/rates/bestrate", handlers.BestRatesHandler(svc))
	r.GET("/rates/history", handlers.HistoryHandler(svc))
	r.GET("/exchangers/list", handlers.ExchangersListHandler(svc))
	r.GET("/exchangers/pairs", handlers.ExchangerPairsHandler(svc))
	r.GET("/currencies/list", handlers.CurrenciesListHandler(svc))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
