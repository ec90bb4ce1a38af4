package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fxhub_http_requests_total",
			Help: "Количество HTTP-запросов по маршрутам и статусам",
		},
		[]string{"path", "method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fxhub_http_request_duration_seconds",
			Help:    "Длительность обработки HTTP-запросов",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	storeErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fxhub_store_errors_total",
			Help: "Количество ошибок доступа к хранилищу котировок",
		},
	)

	trendLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fxhub_trend_lookups_total",
			Help: "Поиски baseline для тренда по результату (baseline/flat/error)",
		},
		[]string{"result"},
	)
)

// Middleware записывает счётчик и длительность по каждому запросу.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		requestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}

// ObserveStoreError учитывает ошибку запроса к хранилищу.
func ObserveStoreError() {
	storeErrorsTotal.Inc()
}

// ObserveTrendLookup учитывает исход поиска baseline.
func ObserveTrendLookup(result string) {
	trendLookupsTotal.WithLabelValues(result).Inc()
}
