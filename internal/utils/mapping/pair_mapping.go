package mapping

import (
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/models"
)

// ToModelPair converts a domain Pair to a model Pair
func ToModelPair(d domain.Pair) models.Pair {
	return models.Pair{
		ID:     d.ID,
		Base:   d.Base,
		Target: d.Target,
		Unit:   d.Unit,
		Active: d.Active,
	}
}

// ToDomainPair converts a model Pair to a domain Pair
func ToDomainPair(m models.Pair) domain.Pair {
	return domain.Pair{
		ID:     m.ID,
		Base:   m.Base,
		Target: m.Target,
		Unit:   m.Unit,
		Active: m.Active,
	}
}
