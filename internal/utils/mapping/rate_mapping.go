package mapping

import (
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/models"
)

// ToModelRate converts a domain RateFact to a model Rate
func ToModelRate(d domain.RateFact) models.Rate {
	return models.Rate{
		Pair:     d.Pair,
		RateDate: domain.Truncate(d.Date),
		Rate:     d.Rate,
	}
}

// ToDomainRateFact converts a model Rate to a domain RateFact
func ToDomainRateFact(m models.Rate) domain.RateFact {
	return domain.RateFact{
		Pair: m.Pair,
		Date: domain.Truncate(m.RateDate),
		Rate: m.Rate,
	}
}

// ToDomainRatePoints converts range scan rows to domain points
func ToDomainRatePoints(rows []models.RatePoint) []domain.RatePoint {
	points := make([]domain.RatePoint, len(rows))
	for i, r := range rows {
		points[i] = domain.RatePoint{Date: domain.Truncate(r.RateDate), Rate: r.Rate}
	}
	return points
}

// ToDomainCoverage converts a coverage row to its domain form
func ToDomainCoverage(m models.RateCoverage) domain.PairCoverage {
	return domain.PairCoverage{
		Pair:            m.Pair,
		Count:           m.Count,
		FirstDate:       domain.Truncate(m.FirstDate),
		LastDate:        domain.Truncate(m.LastDate),
		MissingWeekdays: int(m.MissingWeekdays),
	}
}
