package rates

import (
	"context"
	"sort"
	"strings"

	"github.com/valeriaulyamaeva/fxhub-backend/internal/metrics"
	"github.com/valeriaulyamaeva/fxhub-backend/models"
)

type pairChannelKey struct {
	pair      string
	channelID int
}

type pairGroup struct {
	buys  []models.Rate
	sells []models.Rate
}

// BestRates возвращает лучшие курсы по каждой валютной паре: максимальный buy
// и минимальный sell среди последних котировок всех обменников. currencies и
// exchangers — необязательные фильтры ("USD/UAH", имена обменников).
//
// Результат отсортирован по паре, поэтому повторный вызов на неизменном
// хранилище даёт побайтово тот же ответ. При равных значениях побеждает
// запись, встреченная первой, то есть с самым свежим edited среди равных.
func (s *Service) BestRates(ctx context.Context, currencies, exchangers []string) ([]models.BestRate, error) {
	channels, err := s.store.Channels(ctx)
	if err != nil {
		metrics.ObserveStoreError()
		return nil, err
	}
	channelNames := make(map[int]string, len(channels))
	for _, ch := range channels {
		channelNames[ch.ID] = ch.Name
	}

	// Фильтр по обменникам превращается в фильтр по channel_id.
	var channelIDs []int
	if len(exchangers) > 0 {
		wanted := make(map[string]bool, len(exchangers))
		for _, name := range exchangers {
			wanted[strings.TrimSpace(name)] = true
		}
		for _, ch := range channels {
			if wanted[ch.Name] {
				channelIDs = append(channelIDs, ch.ID)
			}
		}
		if len(channelIDs) == 0 {
			// Ни одного совпадения — пустой результат, не ошибка.
			return []models.BestRate{}, nil
		}
	}

	all, err := s.store.Rates(ctx, RateFilter{ChannelIDs: channelIDs})
	if err != nil {
		metrics.ObserveStoreError()
		return nil, err
	}

	var pairFilter map[string]bool
	if len(currencies) > 0 {
		pairFilter = make(map[string]bool, len(currencies))
		for _, pair := range currencies {
			pairFilter[normalizePair(pair)] = true
		}
	}

	// Одна запись на (пара, канал): котировки идут по edited DESC, первая
	// встреченная и есть последняя. Порядок первого появления сохраняем —
	// от него зависит, кто выигрывает при равных значениях.
	latest := make(map[pairChannelKey]models.Rate)
	var order []pairChannelKey
	for _, r := range all {
		k := pairChannelKey{pair: r.Pair(), channelID: r.ChannelID}
		existing, ok := latest[k]
		if !ok {
			latest[k] = r
			order = append(order, k)
		} else if r.Edited.After(existing.Edited) {
			latest[k] = r
		}
	}

	groups := make(map[string]*pairGroup)
	for _, k := range order {
		if pairFilter != nil && !pairFilter[k.pair] {
			continue
		}
		r := latest[k]
		g := groups[k.pair]
		if g == nil {
			g = &pairGroup{}
			groups[k.pair] = g
		}
		if r.Buy != nil {
			g.buys = append(g.buys, r)
		}
		if r.Sell != nil {
			g.sells = append(g.sells, r)
		}
	}

	pairs := make([]string, 0, len(groups))
	for pair, g := range groups {
		// Пары, где нет ни одной стороны, выпадают целиком.
		if len(g.buys) == 0 && len(g.sells) == 0 {
			continue
		}
		pairs = append(pairs, pair)
	}
	sort.Strings(pairs)

	results := make([]models.BestRate, 0, len(pairs))
	for _, pair := range pairs {
		g := groups[pair]
		br := models.BestRate{Currency: pair}

		if len(g.buys) > 0 {
			best := g.buys[0]
			for _, r := range g.buys[1:] {
				if *r.Buy > *best.Buy {
					best = r
				}
			}
			ts := best.Edited
			br.BuyBest = best.Buy
			br.BuyExchanger = channelName(channelNames, best.ChannelID)
			br.BuyTimestamp = &ts
			s.fillTrend(ctx, &br, best, SideBuy)
		}

		if len(g.sells) > 0 {
			best := g.sells[0]
			for _, r := range g.sells[1:] {
				if *r.Sell < *best.Sell {
					best = r
				}
			}
			ts := best.Edited
			br.SellBest = best.Sell
			br.SellExchanger = channelName(channelNames, best.ChannelID)
			br.SellTimestamp = &ts
			s.fillTrend(ctx, &br, best, SideSell)
		}

		results = append(results, br)
	}
	return results, nil
}

// fillTrend обогащает выигравшую запись трендом по её стороне. Baseline
// ищется только по сравниваемой стороне, вторая сторона записи — контекст.
func (s *Service) fillTrend(ctx context.Context, br *models.BestRate, winner models.Rate, side Side) {
	current := sideValue(&winner, side)
	prev := s.PreviousRate(ctx, winner.ChannelID, winner.CurrencyA, winner.CurrencyB, current, side)

	change := models.Change{Trend: models.TrendStable}
	if prev != nil {
		change = s.CalculateChange(current, sideValue(prev, side))
	}

	abs, pct := change.ChangeAbs, change.ChangePct
	if side == SideSell {
		br.SellTrend = change.Trend
		br.SellChangeAbs = &abs
		br.SellChangePct = &pct
		return
	}
	br.BuyTrend = change.Trend
	br.BuyChangeAbs = &abs
	br.BuyChangePct = &pct
}

func channelName(names map[int]string, id int) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}

// normalizePair приводит пару к виду "USD/UAH". Строка без разделителя
// остаётся как есть (и просто ничего не отфильтрует).
func normalizePair(pair string) string {
	parts := strings.SplitN(pair, "/", 2)
	if len(parts) != 2 {
		return strings.ToUpper(strings.TrimSpace(pair))
	}
	return strings.ToUpper(strings.TrimSpace(parts[0])) + "/" + strings.ToUpper(strings.TrimSpace(parts[1]))
}
