package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/repository"
)

// AggregatesRepository implements the aggregates repository for PostgreSQL
type AggregatesRepository struct {
	pool *pgxpool.Pool
}

// NewAggregatesRepository creates a new AggregatesRepository
func NewAggregatesRepository(pool *pgxpool.Pool) repository.Aggregates {
	return &AggregatesRepository{pool: pool}
}

// IncrementAggregate applies a one-shot delta, creating the row for a
// first-seen player. The display name follows the latest flush so renames
// propagate.
func (r *AggregatesRepository) IncrementAggregate(ctx context.Context, delta domain.AggregateDelta) error {
	const query = `
		INSERT INTO player_aggregates (player_id, display_name, total_damage, total_clicks, boss_kills, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (player_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			total_damage = player_aggregates.total_damage + EXCLUDED.total_damage,
			total_clicks = player_aggregates.total_clicks + EXCLUDED.total_clicks,
			boss_kills = player_aggregates.boss_kills + EXCLUDED.boss_kills,
			updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query,
		delta.PlayerID, delta.DisplayName, delta.Damage, delta.Clicks, delta.BossKills)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertAggregate, err)
	}
	return nil
}

// TopByLifetimeDamage returns the all-time leaderboard ordered by total
// damage, ties broken by player id for a stable page.
func (r *AggregatesRepository) TopByLifetimeDamage(ctx context.Context, limit int) ([]domain.AllTimeEntry, error) {
	const query = `
		SELECT player_id, display_name, total_damage, total_clicks, boss_kills
		FROM player_aggregates
		ORDER BY total_damage DESC, player_id ASC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}
	defer rows.Close()

	entries := make([]domain.AllTimeEntry, 0, limit)
	rank := 0
	for rows.Next() {
		var entry domain.AllTimeEntry
		if err := rows.Scan(&entry.PlayerID, &entry.DisplayName, &entry.TotalDamage, &entry.TotalClicks, &entry.BossKills); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanLeaderboard, err)
		}
		rank++
		entry.Rank = rank
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}

	return entries, nil
}
