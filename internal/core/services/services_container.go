package services

import (
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
	"github.com/SscSPs/fx_rates_app/internal/platform/config"
)

// Dependencies are the adapters the services are built on. Repos and Fetcher
// are nil in mock mode.
type Dependencies struct {
	Source  sources.RateSource
	Fetcher sources.RateFetcher
	Repos   *portsrepo.RepositoryProvider
}

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Ingestion and Maintenance are only set when a store is available.
func NewServiceContainer(cfg *config.Config, deps Dependencies) *portssvc.ServiceContainer {
	vocab := domain.NewVocabulary(domain.DefaultCatalog, cfg.Currencies)
	container := &portssvc.ServiceContainer{
		Query: NewQueryService(deps.Source),
	}

	var pairWriter portsrepo.PairWriter
	if deps.Repos != nil {
		pairWriter = deps.Repos.PairRepo
		container.Maintenance = NewMaintenanceService(deps.Repos.RateRepo)
		if deps.Fetcher != nil {
			container.Ingestion = NewIngestionService(deps.Fetcher, deps.Repos.RateRepo, vocab)
		}
	}
	container.Pairs = NewPairService(deps.Source, pairWriter, vocab, cfg.HomeCurrency)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.QuerySvcFacade       = (*queryService)(nil)
	_ portssvc.PairSvcFacade        = (*pairService)(nil)
	_ portssvc.IngestionSvcFacade   = (*ingestionService)(nil)
	_ portssvc.MaintenanceSvcFacade = (*maintenanceService)(nil)
)
