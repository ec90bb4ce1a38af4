package models

// CurrencyPair — упорядоченная пара (базовая, котируемая).
type CurrencyPair struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// CurrencyInventory — все валюты и пары, встречающиеся в котировках.
type CurrencyInventory struct {
	CurrenciesA []string       `json:"currencies_a"`
	CurrenciesB []string       `json:"currencies_b"`
	Pairs       []CurrencyPair `json:"pairs"`
}

// ExchangerPairs — валютные пары из последних котировок одного обменника.
type ExchangerPairs struct {
	Exchanger string   `json:"exchanger"`
	Pairs     []string `json:"pairs"`
}
