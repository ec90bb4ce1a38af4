package rates

import (
	"context"
	"sort"

	"github.com/valeriaulyamaeva/fxhub-backend/internal/metrics"
	"github.com/valeriaulyamaeva/fxhub-backend/models"
)

// ExchangerNames возвращает отсортированные уникальные имена обменников.
func (s *Service) ExchangerNames(ctx context.Context) ([]string, error) {
	channels, err := s.store.Channels(ctx)
	if err != nil {
		metrics.ObserveStoreError()
		return nil, err
	}
	seen := make(map[string]bool, len(channels))
	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		if !seen[ch.Name] {
			seen[ch.Name] = true
			names = append(names, ch.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ExchangerPairs возвращает по каждому обменнику отсортированный список пар
// из его котировок, плюс количество уникальных пар по всем обменникам.
// Обменники без котировок тоже попадают в список — с пустым набором пар.
func (s *Service) ExchangerPairs(ctx context.Context) ([]models.ExchangerPairs, int, error) {
	channels, err := s.store.Channels(ctx)
	if err != nil {
		metrics.ObserveStoreError()
		return nil, 0, err
	}

	all, err := s.store.Rates(ctx, RateFilter{})
	if err != nil {
		metrics.ObserveStoreError()
		return nil, 0, err
	}

	channelNames := make(map[int]string, len(channels))
	pairsByName := make(map[string]map[string]bool, len(channels))
	for _, ch := range channels {
		channelNames[ch.ID] = ch.Name
		if pairsByName[ch.Name] == nil {
			pairsByName[ch.Name] = make(map[string]bool)
		}
	}
	totalPairs := make(map[string]bool)
	for _, r := range all {
		name, ok := channelNames[r.ChannelID]
		if !ok {
			continue
		}
		pairsByName[name][r.Pair()] = true
		totalPairs[r.Pair()] = true
	}

	names := make([]string, 0, len(pairsByName))
	for name := range pairsByName {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]models.ExchangerPairs, 0, len(names))
	for _, name := range names {
		pairs := make([]string, 0, len(pairsByName[name]))
		for pair := range pairsByName[name] {
			pairs = append(pairs, pair)
		}
		sort.Strings(pairs)
		result = append(result, models.ExchangerPairs{Exchanger: name, Pairs: pairs})
	}
	return result, len(totalPairs), nil
}

// Currencies собирает все валюты и уникальные пары из котировок.
func (s *Service) Currencies(ctx context.Context) (*models.CurrencyInventory, error) {
	all, err := s.store.Rates(ctx, RateFilter{})
	if err != nil {
		metrics.ObserveStoreError()
		return nil, err
	}

	currenciesA := make(map[string]bool)
	currenciesB := make(map[string]bool)
	seenPairs := make(map[models.CurrencyPair]bool)
	inventory := &models.CurrencyInventory{
		CurrenciesA: []string{},
		CurrenciesB: []string{},
		Pairs:       []models.CurrencyPair{},
	}
	for _, r := range all {
		if r.CurrencyA != "" {
			currenciesA[r.CurrencyA] = true
		}
		if r.CurrencyB != "" {
			currenciesB[r.CurrencyB] = true
		}
		pair := models.CurrencyPair{Base: r.CurrencyA, Quote: r.CurrencyB}
		if pair.Base != "" && pair.Quote != "" && !seenPairs[pair] {
			seenPairs[pair] = true
			inventory.Pairs = append(inventory.Pairs, pair)
		}
	}

	for c := range currenciesA {
		inventory.CurrenciesA = append(inventory.CurrenciesA, c)
	}
	for c := range currenciesB {
		inventory.CurrenciesB = append(inventory.CurrenciesB, c)
	}
	sort.Strings(inventory.CurrenciesA)
	sort.Strings(inventory.CurrenciesB)
	sort.Slice(inventory.Pairs, func(i, j int) bool {
		if inventory.Pairs[i].Base != inventory.Pairs[j].Base {
			return inventory.Pairs[i].Base < inventory.Pairs[j].Base
		}
		return inventory.Pairs[i].Quote < inventory.Pairs[j].Quote
	})
	return inventory, nil
}
