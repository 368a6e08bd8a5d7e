package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/core/services"
	"github.com/SscSPs/fx_rates_app/internal/datasource"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type QueryServiceTestSuite struct {
	suite.Suite
	mockSource *MockRateSource
	service    portssvc.QuerySvcFacade
	today      time.Time
}

func (suite *QueryServiceTestSuite) SetupTest() {
	suite.mockSource = new(MockRateSource)
	suite.today = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.service = services.NewQueryService(suite.mockSource, services.WithClock(func() time.Time {
		return suite.today.Add(15 * time.Hour)
	}))
}

func (suite *QueryServiceTestSuite) TestGetHistory_Success() {
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	points := []domain.RatePoint{{Date: start, Rate: 1450}, {Date: end, Rate: 1451}}
	suite.mockSource.On("FetchHistory", ctx, "USD_KRW", start, end).Return(points, nil).Once()

	hist, err := suite.service.GetHistory(ctx, "USD_KRW", "2025-01-01", "2025-01-02")

	suite.Require().NoError(err)
	suite.Equal("USD_KRW", hist.Pair)
	suite.Equal(points, hist.Data)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *QueryServiceTestSuite) TestGetHistory_NilDataBecomesEmpty() {
	ctx := context.Background()
	suite.mockSource.On("FetchHistory", ctx, "XXX_YYY", mock.Anything, mock.Anything).Return(nil, nil).Once()

	hist, err := suite.service.GetHistory(ctx, "XXX_YYY", "2025-01-01", "2025-01-02")

	suite.Require().NoError(err)
	suite.NotNil(hist.Data)
	suite.Empty(hist.Data)
}

func (suite *QueryServiceTestSuite) TestGetHistory_Validation() {
	ctx := context.Background()
	cases := []struct {
		name, start, end, msg string
	}{
		{"malformed start", "2025/01/01", "2025-01-02", "start/end must be YYYY-MM-DD"},
		{"malformed end", "2025-01-01", "tomorrow", "start/end must be YYYY-MM-DD"},
		{"impossible date", "2025-02-30", "2025-03-01", "start/end must be YYYY-MM-DD"},
		{"inverted", "2025-01-10", "2025-01-01", "start must not be after end"},
		{"too long", "2010-01-01", "2025-01-01", "range may not exceed 10 years"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			_, err := suite.service.GetHistory(ctx, "USD_KRW", tc.start, tc.end)
			suite.Require().Error(err)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Equal(tc.msg, apperrors.Message(err))
		})
	}
	suite.mockSource.AssertNotCalled(suite.T(), "FetchHistory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QueryServiceTestSuite) TestGetHistory_MaxSpanAllowed() {
	ctx := context.Background()
	suite.mockSource.On("FetchHistory", ctx, "USD_KRW", mock.Anything, mock.Anything).Return([]domain.RatePoint{}, nil).Once()

	// 2015-01-01..2025-01-08 is exactly 3660 days.
	_, err := suite.service.GetHistory(ctx, "USD_KRW", "2015-01-01", "2025-01-08")
	suite.NoError(err)

	_, err = suite.service.GetHistory(ctx, "USD_KRW", "2015-01-01", "2025-01-09")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *QueryServiceTestSuite) TestGetHistory_SourceError() {
	ctx := context.Background()
	storeErr := errors.New("connection refused")
	suite.mockSource.On("FetchHistory", ctx, "USD_KRW", mock.Anything, mock.Anything).Return(nil, storeErr).Once()

	_, err := suite.service.GetHistory(ctx, "USD_KRW", "2025-01-01", "2025-01-02")

	suite.ErrorIs(err, storeErr)
}

func (suite *QueryServiceTestSuite) TestPredict_CarryForward() {
	ctx := context.Background()
	latest := &domain.RateFact{Pair: "USD_KRW", Date: suite.today.AddDate(0, 0, -3), Rate: 1388.2}
	suite.mockSource.On("FetchLatest", ctx, "USD_KRW").Return(latest, nil).Once()

	pred, err := suite.service.Predict(ctx, "USD_KRW", 3)

	suite.Require().NoError(err)
	suite.Equal(3, pred.Horizon)
	suite.Require().Len(pred.Yhat, 3)
	for i, p := range pred.Yhat {
		suite.Equal(suite.today.AddDate(0, 0, i+1), p.Date)
		suite.Equal(1388.2, p.Value)
	}
}

func (suite *QueryServiceTestSuite) TestPredict_NoHistory() {
	ctx := context.Background()
	suite.mockSource.On("FetchLatest", ctx, "XXX_KRW").Return(nil, apperrors.NewNotFoundError("No history for XXX_KRW")).Once()

	_, err := suite.service.Predict(ctx, "XXX_KRW", 7)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("No history for XXX_KRW", apperrors.Message(err))
}

func (suite *QueryServiceTestSuite) TestPredict_HorizonBounds() {
	ctx := context.Background()
	for _, h := range []int{0, -1, 61} {
		_, err := suite.service.Predict(ctx, "USD_KRW", h)
		suite.ErrorIs(err, apperrors.ErrValidation, "horizon %d", h)
	}
	suite.mockSource.AssertNotCalled(suite.T(), "FetchLatest", mock.Anything, mock.Anything)
}

func (suite *QueryServiceTestSuite) TestPredict_MockSourceForecasts() {
	ctx := context.Background()
	svc := services.NewQueryService(datasource.NewMockSource(domain.DefaultVocabulary(), "KRW"),
		services.WithClock(func() time.Time { return suite.today }))

	pred, err := svc.Predict(ctx, "USD_KRW", 60)

	suite.Require().NoError(err)
	suite.Len(pred.Yhat, 60)
	suite.Equal("2025-03-11", domain.FormatDate(pred.Yhat[0].Date))
	suite.NotEqual(pred.Yhat[0].Value, pred.Yhat[1].Value)
}

func TestQueryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QueryServiceTestSuite))
}
