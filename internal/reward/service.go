// Package reward turns final encounter standings into durable, claimable
// payouts. Distribution runs synchronously in the death transition; the
// durable writes ride the worker pool so the arena never waits on Postgres.
package reward

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/event"
	"github.com/tovald/bossraid/internal/logger"
	"github.com/tovald/bossraid/internal/metrics"
	"github.com/tovald/bossraid/internal/repository"
	"github.com/tovald/bossraid/internal/worker"
)

// Service defines the interface for reward operations
type Service interface {
	Distribute(ctx context.Context, summary *domain.EncounterSummary) []domain.PendingReward
	Claim(ctx context.Context, playerID string, rewardID uuid.UUID) (*domain.RewardGrants, error)
	GetPending(ctx context.Context, playerID string) ([]domain.PendingReward, error)
}

type service struct {
	repo       repository.Reward
	pool       *worker.Pool
	bus        event.Bus
	maxRetries int
	retryDelay time.Duration
	now        func() time.Time
}

// NewService creates a new reward service
func NewService(repo repository.Reward, pool *worker.Pool, bus event.Bus, maxRetries int, retryDelay time.Duration) Service {
	return &service{
		repo:       repo,
		pool:       pool,
		bus:        bus,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		now:        time.Now,
	}
}

// Distribute computes one pending reward per eligible entry of the final
// standings. Rank is the position on the full board; ineligible rows are
// skipped, never re-ranked. Ranks past the last band get the baseline
// bundle with a nil rank.
func (s *service) Distribute(ctx context.Context, summary *domain.EncounterSummary) []domain.PendingReward {
	log := logger.FromContext(ctx)
	createdAt := s.now()

	rewards := make([]domain.PendingReward, 0, len(summary.Entries))
	for _, entry := range summary.Entries {
		if !entry.Eligible {
			continue
		}

		reward := domain.PendingReward{
			ID:          uuid.New(),
			PlayerID:    entry.PlayerID,
			EncounterID: summary.EncounterID,
			Bundle:      BundleForRank(entry.Rank),
			CreatedAt:   createdAt,
		}
		if entry.Rank <= domain.MaxRankedReward {
			rank := entry.Rank
			reward.Rank = &rank
		}
		rewards = append(rewards, reward)
	}

	for _, reward := range rewards {
		s.pool.Enqueue(worker.NewRewardPersistJob(s.repo, s.bus, reward, s.maxRetries, s.retryDelay))
	}

	metrics.RewardsDistributed.Add(float64(len(rewards)))
	if err := s.bus.Publish(ctx, event.NewRewardsDistributedEvent(summary.EncounterID, len(rewards))); err != nil {
		log.Error("Failed to publish rewards distributed event", "error", err)
	}

	log.Info("Pending rewards queued",
		"encounter_id", summary.EncounterID,
		"eligible", len(rewards),
		"participants", len(summary.Entries))

	return rewards
}

// Claim marks the reward claimed and returns the grants exactly once.
func (s *service) Claim(ctx context.Context, playerID string, rewardID uuid.UUID) (*domain.RewardGrants, error) {
	grants, err := s.repo.ClaimPendingReward(ctx, playerID, rewardID)
	if err != nil {
		return nil, err
	}

	metrics.RewardsClaimed.Inc()
	logger.FromContext(ctx).Info("Reward claimed",
		"reward_id", rewardID,
		"player_id", playerID)

	return grants, nil
}

// GetPending lists the player's unclaimed rewards.
func (s *service) GetPending(ctx context.Context, playerID string) ([]domain.PendingReward, error) {
	return s.repo.GetPendingByPlayer(ctx, playerID)
}
