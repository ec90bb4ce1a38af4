package rates

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/valeriaulyamaeva/fxhub-backend/internal/metrics"
	"github.com/valeriaulyamaeva/fxhub-backend/models"
)

// History группирует котировки пары по интервалам (час или день) за последние
// days дней. В каждом интервале остаются лучшие значения: максимальный buy и
// минимальный sell. exchanger — необязательный фильтр по имени обменника.
//
// Отсечка по дате делается здесь, а не в запросе: хранилище умеет только
// фильтры по равенству.
func (s *Service) History(ctx context.Context, currencyA, currencyB, exchanger string, days int, interval string) (*models.History, error) {
	history := &models.History{
		Currency:   currencyA + "/" + currencyB,
		PeriodDays: days,
		Interval:   interval,
		DataPoints: []models.HistoryPoint{},
	}

	channels, err := s.store.Channels(ctx)
	if err != nil {
		metrics.ObserveStoreError()
		return nil, err
	}
	channelNames := make(map[int]string, len(channels))
	for _, ch := range channels {
		channelNames[ch.ID] = ch.Name
	}

	var channelIDs []int
	if exchanger != "" {
		name := strings.TrimSpace(exchanger)
		for _, ch := range channels {
			if ch.Name == name {
				channelIDs = append(channelIDs, ch.ID)
			}
		}
		if len(channelIDs) == 0 {
			// Неизвестный обменник — пустой ряд, не ошибка.
			return history, nil
		}
	}

	rows, err := s.store.Rates(ctx, RateFilter{
		ChannelIDs: channelIDs,
		CurrencyA:  currencyA,
		CurrencyB:  currencyB,
	})
	if err != nil {
		metrics.ObserveStoreError()
		return nil, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	points := make(map[time.Time]*models.HistoryPoint)
	for _, r := range rows {
		t := r.Edited.UTC()
		if t.Before(cutoff) {
			continue
		}

		var bucket time.Time
		if interval == "day" {
			bucket = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		} else {
			bucket = t.Truncate(time.Hour)
		}

		dp, ok := points[bucket]
		if !ok {
			points[bucket] = &models.HistoryPoint{
				Timestamp: bucket,
				Buy:       r.Buy,
				Sell:      r.Sell,
				Exchanger: channelName(channelNames, r.ChannelID),
			}
			continue
		}
		// Несколько записей в одном интервале — оставляем лучшие курсы.
		if r.Buy != nil && (dp.Buy == nil || *r.Buy > *dp.Buy) {
			dp.Buy = r.Buy
			dp.Exchanger = channelName(channelNames, r.ChannelID)
		}
		if r.Sell != nil && (dp.Sell == nil || *r.Sell < *dp.Sell) {
			dp.Sell = r.Sell
		}
	}

	for _, dp := range points {
		history.DataPoints = append(history.DataPoints, *dp)
	}
	sort.Slice(history.DataPoints, func(i, j int) bool {
		return history.DataPoints[i].Timestamp.Before(history.DataPoints[j].Timestamp)
	})
	return history, nil
}
