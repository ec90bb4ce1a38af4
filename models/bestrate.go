package models

import "time"

// Trend — направление изменения курса.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Change — результат сравнения текущего значения с baseline.
type Change struct {
	Trend     Trend   `json:"trend"`
	ChangeAbs float64 `json:"change_abs"`
	ChangePct float64 `json:"change_pct"`
}

// BestRate — лучший курс по валютной паре среди последних котировок
// всех обменников. Сторона отсутствует в JSON, если ни один обменник
// её не публикует.
type BestRate struct {
	Currency string `json:"currency"`

	BuyBest      *float64   `json:"buy_best,omitempty"`
	BuyExchanger string     `json:"buy_exchanger,omitempty"`
	BuyTimestamp *time.Time `json:"buy_timestamp,omitempty"`
	BuyTrend     Trend      `json:"buy_trend,omitempty"`
	BuyChangeAbs *float64   `json:"buy_change_abs,omitempty"`
	BuyChangePct *float64   `json:"buy_change_pct,omitempty"`

	SellBest      *float64   `json:"sell_best,omitempty"`
	SellExchanger string     `json:"sell_exchanger,omitempty"`
	SellTimestamp *time.Time `json:"sell_timestamp,omitempty"`
	SellTrend     Trend      `json:"sell_trend,omitempty"`
	SellChangeAbs *float64   `json:"sell_change_abs,omitempty"`
	SellChangePct *float64   `json:"sell_change_pct,omitempty"`
}
