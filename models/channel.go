package models

// Channel — источник котировок (обменник).
type Channel struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
