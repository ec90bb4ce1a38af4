package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/config"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/database"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/rates"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/routes"
)

// ScheduleKeepAlive пингует /health по внешнему URL, чтобы бесплатный
// хостинг не усыплял сервис между запросами.
func ScheduleKeepAlive(url string) {
	c := cron.New()
	_, err := c.AddFunc("@every 10m", func() {
		resp, err := http.Get(url + "/health")
		if err != nil {
			log.Printf("Ошибка самопинга %s: %v", url, err)
			return
		}
		resp.Body.Close()
	})
	if err != nil {
		log.Fatalf("Ошибка настройки CRON-задачи самопинга: %v", err)
	}
	c.Start()
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используем переменные окружения")
	}

	cfg := config.MustLoad()

	pool, err := database.ConnectDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	store := database.NewRateStore(pool)
	svc := rates.NewService(store, cfg.TrendWindow, cfg.RateEpsilon)

	r := routes.SetupRouter(svc)

	if cfg.KeepAliveURL != "" {
		ScheduleKeepAlive(cfg.KeepAliveURL)
	}

	log.Printf("Запуск сервера на порту %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
