package dto

import "github.com/SscSPs/fx_rates_app/internal/core/domain"

// HistoryQuery binds GET /api/history. Dates are validated by the service so
// the error messages stay consistent with the CLI.
type HistoryQuery struct {
	Pair  string `form:"pair" binding:"required"`
	Start string `form:"start"`
	End   string `form:"end"`
}

// PredictQuery binds GET /api/predict.
type PredictQuery struct {
	Pair    string `form:"pair" binding:"required"`
	Horizon int    `form:"horizon,default=7" binding:"min=1,max=60"`
}

// RatePointResponse is one {date, rate} entry of a history response.
type RatePointResponse struct {
	Date string  `json:"date" example:"2025-01-02"`
	Rate float64 `json:"rate" example:"1450.5"`
}

// HistoryResponse is the body of GET /api/history.
type HistoryResponse struct {
	Pair string              `json:"pair" example:"USD_KRW"`
	Data []RatePointResponse `json:"data"`
}

// ForecastPointResponse is one {date, value} entry of a prediction response.
type ForecastPointResponse struct {
	Date  string  `json:"date" example:"2025-01-03"`
	Value float64 `json:"value" example:"1451.2"`
}

// PredictionResponse is the body of GET /api/predict.
type PredictionResponse struct {
	Pair    string                  `json:"pair" example:"USD_KRW"`
	Horizon int                     `json:"horizon" example:"7"`
	Yhat    []ForecastPointResponse `json:"yhat"`
}

// PairResponse is one advertised currency pair.
type PairResponse struct {
	ID     string `json:"_id" example:"JPY100_KRW"`
	Base   string `json:"base" example:"JPY100"`
	Target string `json:"target" example:"KRW"`
	Unit   int    `json:"unit" example:"100"`
	Active bool   `json:"active" example:"true"`
}

// PairsResponse is the body of GET /api/pairs.
type PairsResponse struct {
	Currencies []string       `json:"currencies"`
	Pairs      []PairResponse `json:"pairs"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error" example:"start must not be after end"`
}

// ToHistoryResponse converts a domain.History to its response DTO.
func ToHistoryResponse(h *domain.History) HistoryResponse {
	data := make([]RatePointResponse, len(h.Data))
	for i, p := range h.Data {
		data[i] = RatePointResponse{Date: domain.FormatDate(p.Date), Rate: p.Rate}
	}
	return HistoryResponse{Pair: h.Pair, Data: data}
}

// ToPredictionResponse converts a domain.Prediction to its response DTO.
func ToPredictionResponse(p *domain.Prediction) PredictionResponse {
	yhat := make([]ForecastPointResponse, len(p.Yhat))
	for i, f := range p.Yhat {
		yhat[i] = ForecastPointResponse{Date: domain.FormatDate(f.Date), Value: f.Value}
	}
	return PredictionResponse{Pair: p.Pair, Horizon: p.Horizon, Yhat: yhat}
}

// ToPairsResponse converts a domain.PairCatalog to its response DTO.
func ToPairsResponse(c *domain.PairCatalog) PairsResponse {
	pairs := make([]PairResponse, len(c.Pairs))
	for i, p := range c.Pairs {
		pairs[i] = PairResponse{ID: p.ID, Base: p.Base, Target: p.Target, Unit: p.Unit, Active: p.Active}
	}
	currencies := c.Currencies
	if currencies == nil {
		currencies = []string{}
	}
	return PairsResponse{Currencies: currencies, Pairs: pairs}
}
