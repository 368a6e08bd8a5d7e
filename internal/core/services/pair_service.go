package services

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
)

// ErrNoStore is returned by write operations when the service runs without a database.
var ErrNoStore = apperrors.NewAppError(http.StatusServiceUnavailable, "operation requires a database (MOCK=false)", nil)

type pairService struct {
	BaseService
	source sources.RateSource
	writer portsrepo.PairWriter
	vocab  *domain.Vocabulary
	home   string
}

// NewPairService creates the pair listing service. writer may be nil, in which
// case SeedPairs returns ErrNoStore.
func NewPairService(source sources.RateSource, writer portsrepo.PairWriter, vocab *domain.Vocabulary, home string) portssvc.PairSvcFacade {
	return &pairService{source: source, writer: writer, vocab: vocab, home: home}
}

func (s *pairService) ListPairs(ctx context.Context) (*domain.PairCatalog, error) {
	pairs, err := s.source.ListPairs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pairs")
		return nil, err
	}
	if pairs == nil {
		pairs = []domain.Pair{}
	}
	return &domain.PairCatalog{Currencies: s.vocab.Codes(), Pairs: pairs}, nil
}

func (s *pairService) SeedPairs(ctx context.Context) (int, error) {
	if s.writer == nil {
		return 0, ErrNoStore
	}
	n, err := s.writer.UpsertPairs(ctx, domain.DefaultSeedPairs(s.vocab, s.home))
	if err != nil {
		s.LogError(ctx, err, "Failed to seed pairs")
		return 0, err
	}
	s.LogInfo(ctx, "Seeded pairs", slog.Int("count", n))
	return n, nil
}
