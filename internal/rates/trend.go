package rates

import (
	"context"
	"log"
	"math"

	"github.com/valeriaulyamaeva/fxhub-backend/internal/metrics"
	"github.com/valeriaulyamaeva/fxhub-backend/models"
)

// Side — сторона котировки, по которой ищется baseline.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// PreviousRate находит ближайшую предыдущую котировку обменника по паре,
// значение которой на стороне side отличается от current больше чем на
// epsilon. Одинаковые повторные публикации пропускаются: источники часто
// переиздают неизменный курс каждый цикл опроса, и сравнение соседних
// записей давало бы ложные "up"/"down".
//
// Сравнивается только одна сторона: изменение sell у обменника не должно
// влиять на тренд buy, и наоборот.
//
// Возвращает nil, если записей меньше двух, вся недавняя история в пределах
// окна "плоская" или хранилище недоступно. Ошибка выборки не поднимается
// наверх: тренд — это обогащение, а не обязательное поле, и при сбое он
// честнее выглядит как "stable", чем как отказ всего запроса.
func (s *Service) PreviousRate(ctx context.Context, channelID int, currencyA, currencyB string, current *float64, side Side) *models.Rate {
	recent, err := s.store.Rates(ctx, RateFilter{
		ChannelIDs: []int{channelID},
		CurrencyA:  currencyA,
		CurrencyB:  currencyB,
		Limit:      s.window,
	})
	if err != nil {
		log.Printf("Ошибка поиска предыдущего курса для канала %d %s/%s: %v", channelID, currencyA, currencyB, err)
		metrics.ObserveTrendLookup("error")
		return nil
	}
	if len(recent) < 2 {
		metrics.ObserveTrendLookup("flat")
		return nil
	}

	// Первая запись — текущая (сортировка edited DESC), сканируем со второй.
	for i := 1; i < len(recent); i++ {
		candidate := sideValue(&recent[i], side)
		if differs(current, candidate, s.epsilon) {
			metrics.ObserveTrendLookup("baseline")
			return &recent[i]
		}
	}
	metrics.ObserveTrendLookup("flat")
	return nil
}

func sideValue(r *models.Rate, side Side) *float64 {
	if side == SideSell {
		return r.Sell
	}
	return r.Buy
}

// differs: оба значения есть и расходятся больше epsilon, либо одно из двух
// отсутствует. Два отсутствующих значения считаются одинаковыми.
func differs(current, candidate *float64, epsilon float64) bool {
	if (current == nil) != (candidate == nil) {
		return true
	}
	if current == nil {
		return false
	}
	return math.Abs(*current-*candidate) > epsilon
}
