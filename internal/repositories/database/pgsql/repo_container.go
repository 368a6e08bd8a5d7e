package pgsql

import (
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository onto one pool.
func NewRepositoryProvider(dbPool DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo: newPgxRateRepository(dbPool),
		PairRepo: newPgxPairRepository(dbPool),
	}
}
