package domain

import (
	"encoding/json"
	"time"
)

// RateFact is one persisted (pair, date) -> rate record.
type RateFact struct {
	Pair string
	Date time.Time
	Rate float64
}

// RatePoint is a dated rate value as returned by history queries.
type RatePoint struct {
	Date time.Time
	Rate float64
}

// MarshalJSON renders the point as {"date": "YYYY-MM-DD", "rate": n}.
func (p RatePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date string  `json:"date"`
		Rate float64 `json:"rate"`
	}{FormatDate(p.Date), p.Rate})
}

// ForecastPoint is one predicted value.
type ForecastPoint struct {
	Date  time.Time
	Value float64
}

// MarshalJSON renders the point as {"date": "YYYY-MM-DD", "value": n}.
func (p ForecastPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date  string  `json:"date"`
		Value float64 `json:"value"`
	}{FormatDate(p.Date), p.Value})
}

// History is the result of a history query.
type History struct {
	Pair string      `json:"pair"`
	Data []RatePoint `json:"data"`
}

// Prediction is the result of a prediction query.
type Prediction struct {
	Pair    string          `json:"pair"`
	Horizon int             `json:"horizon"`
	Yhat    []ForecastPoint `json:"yhat"`
}

// RawRate is a rate as quoted by the external source, before rescaling.
type RawRate struct {
	Date  time.Time
	Value float64
}

// PairCoverage summarises what the store holds for one pair.
type PairCoverage struct {
	Pair            string
	Count           int64
	FirstDate       time.Time
	LastDate        time.Time
	MissingWeekdays int
}

// Prediction horizon bounds, in days.
const (
	MinHorizon     = 1
	MaxHorizon     = 60
	DefaultHorizon = 7
)
