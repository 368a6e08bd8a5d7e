package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
)

type ingestionService struct {
	BaseService
	fetcher sources.RateFetcher
	writer  portsrepo.RateWriter
	vocab   *domain.Vocabulary
}

// NewIngestionService creates the bulk ingestion pipeline.
func NewIngestionService(fetcher sources.RateFetcher, writer portsrepo.RateWriter, vocab *domain.Vocabulary) portssvc.IngestionSvcFacade {
	return &ingestionService{fetcher: fetcher, writer: writer, vocab: vocab}
}

func (s *ingestionService) IngestPair(ctx context.Context, pair string, start, end time.Time) (int64, error) {
	base, target, err := domain.SplitPair(pair)
	if err != nil {
		return 0, apperrors.NewValidationError(err.Error())
	}
	start, end = domain.Truncate(start), domain.Truncate(end)
	if start.After(end) {
		return 0, apperrors.NewValidationError("start must not be after end")
	}
	if base == target {
		return 0, nil
	}
	for _, code := range []string{base, target} {
		if _, ok := s.vocab.Lookup(code); !ok {
			s.LogDebug(ctx, "Currency not in catalog, requesting it unscaled", slog.String("code", code))
		}
	}

	realBase, realTarget := s.vocab.RealCode(base), s.vocab.RealCode(target)
	raw, err := s.fetcher.FetchRange(ctx, realBase, realTarget, start, end)
	if err != nil {
		return 0, err
	}
	s.LogDebug(ctx, "Fetched quotes",
		slog.String("pair", pair),
		slog.String("from", realBase),
		slog.String("to", realTarget),
		slog.Int("quotes", len(raw)))
	if len(raw) == 0 {
		return 0, nil
	}

	facts := make([]domain.RateFact, 0, len(raw))
	index := make(map[time.Time]int, len(raw))
	for _, r := range raw {
		fact := domain.RateFact{
			Pair: pair,
			Date: domain.Truncate(r.Date),
			Rate: s.vocab.Adjust(base, target, r.Value),
		}
		if i, seen := index[fact.Date]; seen {
			facts[i] = fact
			continue
		}
		index[fact.Date] = len(facts)
		facts = append(facts, fact)
	}

	n, err := s.writer.UpsertRates(ctx, facts)
	if err != nil {
		return 0, fmt.Errorf("failed to store rates for %s: %w", pair, err)
	}
	return n, nil
}

func (s *ingestionService) IngestAll(ctx context.Context, span domain.DateSpan) (*domain.IngestReport, error) {
	pairs := domain.BuildAllPairs(s.vocab.Codes())
	chunks := domain.YearChunks(span.Start, span.End)
	report := &domain.IngestReport{Span: span, Pairs: make([]domain.PairIngestResult, 0, len(pairs))}

	s.LogInfo(ctx, "Starting ingestion",
		slog.String("span", span.String()),
		slog.Int("pairs", len(pairs)),
		slog.Int("chunks", len(chunks)))

	for _, pair := range pairs {
		result := domain.PairIngestResult{Pair: pair}
		for _, chunk := range chunks {
			if err := ctx.Err(); err != nil {
				report.Pairs = append(report.Pairs, result)
				s.LogInfo(ctx, "Ingestion cancelled", slog.String("pair", pair), slog.Int64("total", report.Total))
				return report, err
			}

			n, err := s.IngestPair(ctx, pair, chunk.Start, chunk.End)
			if err != nil {
				s.LogError(ctx, err, "Chunk ingestion failed",
					slog.String("pair", pair),
					slog.String("span", chunk.String()))
				result.Failed++
				report.Failures = append(report.Failures, domain.ChunkFailure{Pair: pair, Span: chunk, Error: err.Error()})
				continue
			}
			s.LogInfo(ctx, "Chunk ingested",
				slog.String("pair", pair),
				slog.String("span", chunk.String()),
				slog.Int64("upserted", n))
			result.Upserted += n
			report.Total += n
		}
		report.Pairs = append(report.Pairs, result)
	}

	s.LogInfo(ctx, "Ingestion finished",
		slog.Int64("total", report.Total),
		slog.Int("failures", len(report.Failures)))
	return report, nil
}
