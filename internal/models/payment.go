package models

import (
	"time"
)

// Payment is money received against a project.
type Payment struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Date      time.Time `json:"date"`
}

// TotalGain sums the amounts of the given payments. Amounts are summed
// regardless of currency; no conversion is performed. An empty set totals 0.
func TotalGain(payments []*Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}
