package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/repository"
)

// RewardRepository implements the reward repository for PostgreSQL
type RewardRepository struct {
	pool *pgxpool.Pool
}

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(pool *pgxpool.Pool) repository.Reward {
	return &RewardRepository{pool: pool}
}

// CreatePendingReward inserts the record unless one already exists for the
// same (player, encounter). The unique constraint absorbs retried writes.
func (r *RewardRepository) CreatePendingReward(ctx context.Context, reward *domain.PendingReward) error {
	bundleJSON, err := json.Marshal(reward.Bundle)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalBundle, err)
	}

	const query = `
		INSERT INTO pending_rewards (reward_id, player_id, encounter_id, rank, bundle, claimed, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6)
		ON CONFLICT (player_id, encounter_id) DO NOTHING`

	createdAt := reward.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = r.pool.Exec(ctx, query,
		reward.ID, reward.PlayerID, reward.EncounterID, reward.Rank, bundleJSON, createdAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertReward, err)
	}
	return nil
}

// ClaimPendingReward marks the reward claimed and returns the grants. The
// conditional UPDATE is the atomicity point: two concurrent claims race on
// the row and exactly one sees claimed = FALSE.
func (r *RewardRepository) ClaimPendingReward(ctx context.Context, playerID string, rewardID uuid.UUID) (*domain.RewardGrants, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginClaimTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	const update = `
		UPDATE pending_rewards
		SET claimed = TRUE, claimed_at = NOW()
		WHERE reward_id = $1 AND player_id = $2 AND NOT claimed
		RETURNING bundle`

	var bundleJSON []byte
	err = tx.QueryRow(ctx, update, rewardID, playerID).Scan(&bundleJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		// Distinguish "never existed" from "already claimed" for the caller.
		const probe = `SELECT claimed FROM pending_rewards WHERE reward_id = $1 AND player_id = $2`
		var claimed bool
		probeErr := tx.QueryRow(ctx, probe, rewardID, playerID).Scan(&claimed)
		if errors.Is(probeErr, pgx.ErrNoRows) {
			return nil, domain.ErrRewardNotFound
		}
		if probeErr != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToClaimReward, probeErr)
		}
		return nil, domain.ErrRewardAlreadyClaimed
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToClaimReward, err)
	}

	var bundle domain.RewardBundle
	if err := json.Unmarshal(bundleJSON, &bundle); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalBundle, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitClaimTx, err)
	}

	return domain.GrantsFrom(&domain.PendingReward{ID: rewardID, Bundle: bundle}), nil
}

// GetPendingByPlayer lists the player's unclaimed rewards, newest first.
func (r *RewardRepository) GetPendingByPlayer(ctx context.Context, playerID string) ([]domain.PendingReward, error) {
	const query = `
		SELECT reward_id, player_id, encounter_id, rank, bundle, claimed, created_at, claimed_at
		FROM pending_rewards
		WHERE player_id = $1 AND NOT claimed
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRewards, err)
	}
	defer rows.Close()

	rewards := make([]domain.PendingReward, 0)
	for rows.Next() {
		var reward domain.PendingReward
		var bundleJSON []byte
		if err := rows.Scan(&reward.ID, &reward.PlayerID, &reward.EncounterID, &reward.Rank,
			&bundleJSON, &reward.Claimed, &reward.CreatedAt, &reward.ClaimedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanReward, err)
		}
		if err := json.Unmarshal(bundleJSON, &reward.Bundle); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalBundle, err)
		}
		rewards = append(rewards, reward)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRewards, err)
	}

	return rewards, nil
}
