package models

import "time"

// Rate — одна котировка обменника для валютной пары.
// Buy/Sell — указатели: обменник может публиковать только одну сторону,
// и отсутствие значения не то же самое, что ноль.
type Rate struct {
	ChannelID int       `json:"channel_id" db:"channel_id"`
	CurrencyA string    `json:"currency_a" db:"currency_a"`
	CurrencyB string    `json:"currency_b" db:"currency_b"`
	Buy       *float64  `json:"buy" db:"buy"`
	Sell      *float64  `json:"sell" db:"sell"`
	Edited    time.Time `json:"edited" db:"edited"`
}

// Pair возвращает пару в формате "USD/UAH".
func (r *Rate) Pair() string {
	return r.CurrencyA + "/" + r.CurrencyB
}
