package rates

import (
	"context"

	"github.com/valeriaulyamaeva/fxhub-backend/models"
)

// RateFilter — фильтр выборки котировок. Только равенство по колонкам,
// сортировка всегда edited DESC, Limit <= 0 означает "без ограничения".
type RateFilter struct {
	ChannelIDs []int
	CurrencyA  string
	CurrencyB  string
	Limit      int
}

// Store — читающий доступ к хранилищу котировок. Реализуется пакетом
// database поверх pgx, в тестах подменяется фейком.
type Store interface {
	Channels(ctx context.Context) ([]models.Channel, error)
	Rates(ctx context.Context, filter RateFilter) ([]models.Rate, error)
	Ping(ctx context.Context) error
}

const (
	defaultWindow  = 100
	defaultEpsilon = 0.0001
)

// Service — агрегация котировок: лучшие курсы, тренды, история, справочники.
// Состояние между запросами не хранится.
type Service struct {
	store   Store
	window  int
	epsilon float64
}

// NewService создаёт сервис. Окно меньше двух записей не имеет смысла
// (baseline ищется среди предыдущих котировок), такие значения заменяются
// значением по умолчанию.
func NewService(store Store, window int, epsilon float64) *Service {
	if window < 2 {
		window = defaultWindow
	}
	if epsilon <= 0 {
		epsilon = defaultEpsilon
	}
	return &Service{store: store, window: window, epsilon: epsilon}
}

// Ping проверяет связь с хранилищем.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
