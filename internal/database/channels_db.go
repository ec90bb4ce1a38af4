package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/fxhub-backend/models"
)

// RateStore — реализация доступа к таблицам channels и rates поверх pgx.
// Только чтение: запись ведёт отдельный процесс сбора котировок.
type RateStore struct {
	pool *pgxpool.Pool
}

func NewRateStore(pool *pgxpool.Pool) *RateStore {
	return &RateStore{pool: pool}
}

// Channels возвращает все каналы (обменники).
func (s *RateStore) Channels(ctx context.Context) ([]models.Channel, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM channels`)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса каналов: %w", err)
	}
	defer rows.Close()

	var channels []models.Channel
	for rows.Next() {
		var ch models.Channel
		if err := rows.Scan(&ch.ID, &ch.Name); err != nil {
			return nil, fmt.Errorf("ошибка чтения канала: %w", err)
		}
		channels = append(channels, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода каналов: %w", err)
	}
	return channels, nil
}

// Ping проверяет доступность хранилища (для /health).
func (s *RateStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
