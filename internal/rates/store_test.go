package rates_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/valeriaulyamaeva/fxhub-backend/internal/rates"
	"github.com/valeriaulyamaeva/fxhub-backend/models"
)

// fakeStore — подменное хранилище для тестов: те же фильтры по равенству,
// сортировка edited DESC и limit, что и у настоящего.
type fakeStore struct {
	channels []models.Channel
	rates    []models.Rate

	failChannels bool
	failRates    bool
	failRecent   bool // ломает только выборки с limit (поиск baseline)
	pingErr      error

	rateCalls []rates.RateFilter
}

func (f *fakeStore) Channels(ctx context.Context) ([]models.Channel, error) {
	if f.failChannels {
		return nil, errors.New("хранилище недоступно")
	}
	return f.channels, nil
}

func (f *fakeStore) Rates(ctx context.Context, filter rates.RateFilter) ([]models.Rate, error) {
	f.rateCalls = append(f.rateCalls, filter)
	if f.failRates {
		return nil, errors.New("хранилище недоступно")
	}
	if f.failRecent && filter.Limit > 0 {
		return nil, errors.New("хранилище недоступно")
	}

	var out []models.Rate
	for _, r := range f.rates {
		if len(filter.ChannelIDs) > 0 && !containsInt(filter.ChannelIDs, r.ChannelID) {
			continue
		}
		if filter.CurrencyA != "" && r.CurrencyA != filter.CurrencyA {
			continue
		}
		if filter.CurrencyB != "" && r.CurrencyB != filter.CurrencyB {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Edited.After(out[j].Edited)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.pingErr
}

func containsInt(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func fptr(v float64) *float64 {
	return &v
}

func at(minutesAgo int) time.Time {
	base := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	return base.Add(-time.Duration(minutesAgo) * time.Minute)
}

func quote(channelID int, pair string, buy, sell *float64, minutesAgo int) models.Rate {
	a, b := pair[:3], pair[4:]
	return models.Rate{
		ChannelID: channelID,
		CurrencyA: a,
		CurrencyB: b,
		Buy:       buy,
		Sell:      sell,
		Edited:    at(minutesAgo),
	}
}
