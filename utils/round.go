package utils

import "github.com/shopspring/decimal"

// Round2 округляет до двух знаков после запятой без двоичного шума.
func Round2(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}
