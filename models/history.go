package models

import "time"

// HistoryPoint — одна точка графика: лучшие buy/sell за интервал.
type HistoryPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Buy       *float64  `json:"buy"`
	Sell      *float64  `json:"sell"`
	Exchanger string    `json:"exchanger"`
}

// History — временной ряд по валютной паре для графиков.
type History struct {
	Currency   string         `json:"currency"`
	PeriodDays int            `json:"period_days"`
	Interval   string         `json:"interval"`
	DataPoints []HistoryPoint `json:"data_points"`
}
