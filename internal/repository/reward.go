package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/tovald/bossraid/internal/domain"
)

// Reward defines the interface for pending reward persistence
type Reward interface {
	// CreatePendingReward inserts the record if no reward exists yet for the
	// same (player, encounter) pair. A duplicate insert is a no-op, not an
	// error, so retried writes stay idempotent.
	CreatePendingReward(ctx context.Context, reward *domain.PendingReward) error

	// ClaimPendingReward atomically marks the reward claimed and returns the
	// grants. Returns domain.ErrRewardNotFound when no such reward exists
	// for the player and domain.ErrRewardAlreadyClaimed on a second claim.
	ClaimPendingReward(ctx context.Context, playerID string, rewardID uuid.UUID) (*domain.RewardGrants, error)

	// GetPendingByPlayer lists the player's unclaimed rewards, newest first.
	GetPendingByPlayer(ctx context.Context, playerID string) ([]domain.PendingReward, error)
}
