package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_app/internal/models"
	"github.com/SscSPs/fx_rates_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// PgxRateRepository implements the rate repository ports using pgx.
type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new PgxRateRepository.
func newPgxRateRepository(db DBTX) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

// upsertRatesSQL writes a whole chunk in one statement. Rows whose rate is
// unchanged are skipped, so RowsAffected counts inserted plus modified rows.
const upsertRatesSQL = `
	INSERT INTO rates (pair, rate_date, rate, updated_at)
	SELECT u.pair, u.rate_date, u.rate, NOW()
	FROM unnest($1::text[], $2::date[], $3::float8[]) AS u(pair, rate_date, rate)
	ON CONFLICT (pair, rate_date) DO UPDATE
	SET rate = EXCLUDED.rate, updated_at = EXCLUDED.updated_at
	WHERE rates.rate IS DISTINCT FROM EXCLUDED.rate`

// UpsertRates inserts or replaces facts keyed by (pair, date).
func (r *PgxRateRepository) UpsertRates(ctx context.Context, facts []domain.RateFact) (int64, error) {
	if len(facts) == 0 {
		return 0, nil
	}

	// ON CONFLICT cannot touch the same row twice in one statement; last write wins.
	type key struct {
		pair string
		date time.Time
	}
	index := make(map[key]int, len(facts))
	pairs := make([]string, 0, len(facts))
	dates := make([]time.Time, 0, len(facts))
	rates := make([]float64, 0, len(facts))
	for _, f := range facts {
		m := mapping.ToModelRate(f)
		k := key{m.Pair, m.RateDate}
		if i, ok := index[k]; ok {
			rates[i] = m.Rate
			continue
		}
		index[k] = len(pairs)
		pairs = append(pairs, m.Pair)
		dates = append(dates, m.RateDate)
		rates = append(rates, m.Rate)
	}

	tag, err := r.Pool.Exec(ctx, upsertRatesSQL, pairs, dates, rates)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to upsert rates", err)
	}
	return tag.RowsAffected(), nil
}

// FindRatesInRange returns the facts of pair with date in [start, end], ascending by date.
func (r *PgxRateRepository) FindRatesInRange(ctx context.Context, pair string, start, end time.Time) ([]domain.RatePoint, error) {
	query := `
		SELECT rate_date, rate
		FROM rates
		WHERE pair = $1 AND rate_date BETWEEN $2 AND $3
		ORDER BY rate_date ASC;
	`

	rows, err := r.Pool.Query(ctx, query, pair, domain.Truncate(start), domain.Truncate(end))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rates", err)
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RatePoint])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan rates", err)
	}
	return mapping.ToDomainRatePoints(modelRows), nil
}

// FindLatestRate returns the most recent fact of pair.
func (r *PgxRateRepository) FindLatestRate(ctx context.Context, pair string) (*domain.RateFact, error) {
	query := `
		SELECT pair, rate_date, rate, updated_at
		FROM rates
		WHERE pair = $1
		ORDER BY rate_date DESC
		LIMIT 1;
	`

	var modelRate models.Rate
	err := r.Pool.QueryRow(ctx, query, pair).Scan(
		&modelRate.Pair, &modelRate.RateDate, &modelRate.Rate, &modelRate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("No history for " + pair)
		}
		return nil, apperrors.NewAppError(500, "failed to find latest rate", err)
	}

	fact := mapping.ToDomainRateFact(modelRate)
	return &fact, nil
}

// StreamRates calls fn for every fact ordered by pair then date.
func (r *PgxRateRepository) StreamRates(ctx context.Context, fn func(domain.RateFact) error) error {
	query := `
		SELECT pair, rate_date, rate, updated_at
		FROM rates
		ORDER BY pair, rate_date;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query rates", err)
	}
	defer rows.Close()

	for rows.Next() {
		var modelRate models.Rate
		if err := rows.Scan(&modelRate.Pair, &modelRate.RateDate, &modelRate.Rate, &modelRate.UpdatedAt); err != nil {
			return apperrors.NewAppError(500, "failed to scan rate", err)
		}
		if err := fn(mapping.ToDomainRateFact(modelRate)); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating rates", err)
	}
	return nil
}

// Coverage summarises stored facts per pair, counting weekdays between the
// first and last stored date that have no fact.
func (r *PgxRateRepository) Coverage(ctx context.Context) ([]domain.PairCoverage, error) {
	query := `
		WITH s AS (
			SELECT pair,
			       COUNT(*) AS n,
			       MIN(rate_date) AS first_date,
			       MAX(rate_date) AS last_date,
			       COUNT(*) FILTER (WHERE EXTRACT(ISODOW FROM rate_date) < 6) AS weekday_n
			FROM rates
			GROUP BY pair
		)
		SELECT s.pair, s.n, s.first_date, s.last_date,
		       (SELECT COUNT(*)
		        FROM generate_series(s.first_date, s.last_date, INTERVAL '1 day') AS g(d)
		        WHERE EXTRACT(ISODOW FROM g.d) < 6) - s.weekday_n AS missing_weekdays
		FROM s
		ORDER BY s.pair;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query coverage", err)
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RateCoverage])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan coverage", err)
	}

	out := make([]domain.PairCoverage, len(modelRows))
	for i, m := range modelRows {
		out[i] = mapping.ToDomainCoverage(m)
	}
	return out, nil
}
