package models

import (
	"time"
)

// Rate is a row of the rates table.
type Rate struct {
	Pair      string    `db:"pair"`
	RateDate  time.Time `db:"rate_date"`
	Rate      float64   `db:"rate"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RatePoint is the (rate_date, rate) projection used by range scans.
type RatePoint struct {
	RateDate time.Time `db:"rate_date"`
	Rate     float64   `db:"rate"`
}

// RateCoverage is one row of the per-pair coverage report.
type RateCoverage struct {
	Pair            string    `db:"pair"`
	Count           int64     `db:"n"`
	FirstDate       time.Time `db:"first_date"`
	LastDate        time.Time `db:"last_date"`
	MissingWeekdays int64     `db:"missing_weekdays"`
}
