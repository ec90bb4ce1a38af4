package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/valeriaulyamaeva/fxhub-backend/internal/rates"
	"github.com/valeriaulyamaeva/fxhub-backend/models"
)

// Rates возвращает котировки по фильтру, отсортированные по edited DESC.
// Фильтры только по равенству, как и у исходного PostgREST-клиента.
func (s *RateStore) Rates(ctx context.Context, filter rates.RateFilter) ([]models.Rate, error) {
	var (
		conds []string
		args  []interface{}
	)
	if len(filter.ChannelIDs) > 0 {
		args = append(args, filter.ChannelIDs)
		conds = append(conds, fmt.Sprintf("channel_id = ANY($%d)", len(args)))
	}
	if filter.CurrencyA != "" {
		args = append(args, filter.CurrencyA)
		conds = append(conds, fmt.Sprintf("currency_a = $%d", len(args)))
	}
	if filter.CurrencyB != "" {
		args = append(args, filter.CurrencyB)
		conds = append(conds, fmt.Sprintf("currency_b = $%d", len(args)))
	}

	query := `SELECT channel_id, currency_a, currency_b, buy, sell, edited FROM rates`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY edited DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса котировок: %w", err)
	}
	defer rows.Close()

	var result []models.Rate
	for rows.Next() {
		var r models.Rate
		if err := rows.Scan(&r.ChannelID, &r.CurrencyA, &r.CurrencyB, &r.Buy, &r.Sell, &r.Edited); err != nil {
			return nil, fmt.Errorf("ошибка чтения котировки: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода котировок: %w", err)
	}
	return result, nil
}
