package utils

import (
	"fmt"
	"strings"
)

// ParsePair разбирает строку вида "USD/UAH" на базовую и котируемую валюты.
// Пробелы обрезаются, код валюты приводится к верхнему регистру.
func ParsePair(pair string) (string, string, error) {
	if !strings.Contains(pair, "/") {
		return "", "", fmt.Errorf("некорректный формат валютной пары: %q", pair)
	}
	parts := strings.SplitN(pair, "/", 2)
	base := strings.ToUpper(strings.TrimSpace(parts[0]))
	quote := strings.ToUpper(strings.TrimSpace(parts[1]))
	if base == "" || quote == "" {
		return "", "", fmt.Errorf("некорректный формат валютной пары: %q", pair)
	}
	return base, quote, nil
}

// SplitCSV разбивает список через запятую, обрезая пробелы и отбрасывая
// пустые элементы. Для пустой строки возвращает nil.
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
