package pgsql

import (
	"context"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_app/internal/models"
	"github.com/SscSPs/fx_rates_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// PgxPairRepository implements the pair repository ports using pgx.
type PgxPairRepository struct {
	BaseRepository
}

// newPgxPairRepository creates a new PgxPairRepository.
func newPgxPairRepository(db DBTX) *PgxPairRepository {
	return &PgxPairRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.PairRepositoryFacade = (*PgxPairRepository)(nil)

// UpsertPairs inserts or updates pairs by id in one transaction.
func (r *PgxPairRepository) UpsertPairs(ctx context.Context, pairs []domain.Pair) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}

	batch := &pgx.Batch{}
	for _, p := range pairs {
		m := mapping.ToModelPair(p)
		batch.Queue(`
			INSERT INTO pairs (id, base, target, unit, active, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			ON CONFLICT (id) DO UPDATE
			SET base = EXCLUDED.base, target = EXCLUDED.target, unit = EXCLUDED.unit,
			    active = EXCLUDED.active, updated_at = EXCLUDED.updated_at`,
			m.ID, m.Base, m.Target, m.Unit, m.Active,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		_ = r.Rollback(ctx, tx)
		return 0, apperrors.NewAppError(500, "failed to upsert pairs", err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return len(pairs), nil
}

// ListActivePairs returns the pairs flagged active, ordered by id.
func (r *PgxPairRepository) ListActivePairs(ctx context.Context) ([]domain.Pair, error) {
	query := `
		SELECT id, base, target, unit, active
		FROM pairs
		WHERE active = TRUE
		ORDER BY id;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list pairs", err)
	}
	modelPairs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Pair])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan pairs", err)
	}

	pairs := make([]domain.Pair, len(modelPairs))
	for i, m := range modelPairs {
		pairs[i] = mapping.ToDomainPair(m)
	}
	return pairs, nil
}
