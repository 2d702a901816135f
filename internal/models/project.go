// Package models defines the domain types shared across the API and storage layers.
package models

import (
	"time"
)

// CompensationRate is the billing cadence of a project.
type CompensationRate string

const (
	RateDaily    CompensationRate = "daily"
	RateHourly   CompensationRate = "hourly"
	RateOneTime  CompensationRate = "one-time"
	RateMonthly  CompensationRate = "monthly"
	RateBiweekly CompensationRate = "biweekly"
)

// Valid reports whether the rate is one of the supported cadences.
func (r CompensationRate) Valid() bool {
	switch r {
	case RateDaily, RateHourly, RateOneTime, RateMonthly, RateBiweekly:
		return true
	default:
		return false
	}
}

// DefaultCurrency is applied when a request omits the currency field.
const DefaultCurrency = "USD"

// Project represents a freelance contract.
// CumulatedCompensation is a running total of recorded payments; it starts at
// zero and is only ever incremented by payment recording.
type Project struct {
	ID                    string           `json:"id"`
	Title                 string           `json:"title"`
	CompanyName           string           `json:"companyName"`
	Description           string           `json:"description,omitempty"`
	Compensation          float64          `json:"compensation"`
	Currency              string           `json:"currency"`
	CompensationRate      CompensationRate `json:"compensationRate"`
	StartDate             time.Time        `json:"startDate"`
	EndDate               time.Time        `json:"endDate"`
	CumulatedCompensation float64          `json:"cumulatedCompensation"`
}
