package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
)

// QueryServiceOption is a function that configures a queryService
type QueryServiceOption func(*queryService)

// WithClock overrides how the service determines "today".
func WithClock(now func() time.Time) QueryServiceOption {
	return func(s *queryService) {
		s.now = now
	}
}

type queryService struct {
	BaseService
	source sources.RateSource
	now    func() time.Time
}

// NewQueryService creates the history and prediction service over source.
func NewQueryService(source sources.RateSource, options ...QueryServiceOption) portssvc.QuerySvcFacade {
	svc := &queryService{source: source, now: domain.Today}
	for _, opt := range options {
		opt(svc)
	}
	return svc
}

func (s *queryService) GetHistory(ctx context.Context, pair, start, end string) (*domain.History, error) {
	startDate, errStart := domain.ParseDate(start)
	endDate, errEnd := domain.ParseDate(end)
	if errStart != nil || errEnd != nil {
		return nil, apperrors.NewValidationError("start/end must be YYYY-MM-DD")
	}
	if startDate.After(endDate) {
		return nil, apperrors.NewValidationError("start must not be after end")
	}
	if domain.DaysBetween(startDate, endDate) > domain.MaxHistorySpanDays {
		return nil, apperrors.NewValidationError("range may not exceed 10 years")
	}

	points, err := s.source.FetchHistory(ctx, pair, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch history", slog.String("pair", pair))
		return nil, err
	}
	if points == nil {
		points = []domain.RatePoint{}
	}
	return &domain.History{Pair: pair, Data: points}, nil
}

func (s *queryService) Predict(ctx context.Context, pair string, horizon int) (*domain.Prediction, error) {
	if horizon < domain.MinHorizon || horizon > domain.MaxHorizon {
		return nil, apperrors.NewValidationError("horizon must be between 1 and 60")
	}
	today := domain.Truncate(s.now())

	if f, ok := sources.AsForecaster(s.source); ok {
		yhat, err := f.Forecast(ctx, pair, horizon, today)
		if err != nil {
			return nil, err
		}
		return &domain.Prediction{Pair: pair, Horizon: horizon, Yhat: yhat}, nil
	}

	latest, err := s.source.FetchLatest(ctx, pair)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, apperrors.NewNotFoundError("No history for " + pair)
	}

	yhat := make([]domain.ForecastPoint, 0, horizon)
	for i := 1; i <= horizon; i++ {
		yhat = append(yhat, domain.ForecastPoint{Date: today.AddDate(0, 0, i), Value: latest.Rate})
	}
	return &domain.Prediction{Pair: pair, Horizon: horizon, Yhat: yhat}, nil
}
