package models

import "time"

// ExchangeRate converts stored currencies for display only. Booking
// amounts are always persisted in their original currency.
type ExchangeRate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	From      string    `json:"from" gorm:"size:3;uniqueIndex:idx_rate_pair"`
	To        string    `json:"to" gorm:"size:3;uniqueIndex:idx_rate_pair"`
	Rate      float64   `json:"rate"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
