package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — настройки сервиса из переменных окружения (.env поднимается в main).
type Config struct {
	Port        string `env:"PORT" env-default:"8000"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Окно поиска baseline и допуск сравнения курсов.
	// Окно меньше 100 недообнаруживает длинные "плоские" серии котировок.
	TrendWindow int     `env:"TREND_WINDOW" env-default:"100"`
	RateEpsilon float64 `env:"RATE_EPSILON" env-default:"0.0001"`

	// URL для самопинга, чтобы бесплатный хостинг не засыпал.
	// Пустое значение отключает задачу.
	KeepAliveURL string `env:"KEEPALIVE_URL"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("Ошибка чтения конфигурации из окружения: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatalf("Не задана переменная DATABASE_URL")
	}
	return &cfg
}
