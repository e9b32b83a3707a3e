package worker

import (
	"context"
	"time"

	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/event"
	"github.com/tovald/bossraid/internal/logger"
	"github.com/tovald/bossraid/internal/repository"
)

// RewardPersistJob writes one pending reward record with bounded retries.
// Exhausting the retries publishes a reward.persist_failed event, which the
// resilient publisher lands in the dead-letter file for manual replay.
type RewardPersistJob struct {
	repo       repository.Reward
	bus        event.Bus
	reward     domain.PendingReward
	maxRetries int
	retryDelay time.Duration
}

// NewRewardPersistJob creates a persist job for one reward record.
func NewRewardPersistJob(repo repository.Reward, bus event.Bus, reward domain.PendingReward, maxRetries int, retryDelay time.Duration) *RewardPersistJob {
	return &RewardPersistJob{
		repo:       repo,
		bus:        bus,
		reward:     reward,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}
}

// Process attempts the write until it succeeds or the retry budget runs out.
// The insert is idempotent on (player, encounter), so a retry after an
// ambiguous failure cannot double-grant.
func (j *RewardPersistJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= j.maxRetries; attempt++ {
		if attempt > 0 {
			log.Warn(LogMsgRewardPersistRetry,
				"reward_id", j.reward.ID,
				"player_id", j.reward.PlayerID,
				"attempt", attempt,
				"error", lastErr)
			select {
			case <-time.After(j.retryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = j.repo.CreatePendingReward(ctx, &j.reward)
		if lastErr == nil {
			return nil
		}
	}

	log.Error(LogMsgRewardPersistExhausted,
		"reward_id", j.reward.ID,
		"player_id", j.reward.PlayerID,
		"error", lastErr)

	// The event payload carries the full record so nothing is lost.
	if err := j.bus.Publish(ctx, event.NewRewardPersistFailedEvent(j.reward, lastErr)); err != nil {
		log.Error("Failed to publish reward persist failure", "error", err)
	}
	return lastErr
}

// AggregateFlushJob applies one lifetime-stat delta with bounded retries.
type AggregateFlushJob struct {
	repo       repository.Aggregates
	delta      domain.AggregateDelta
	maxRetries int
	retryDelay time.Duration
}

// NewAggregateFlushJob creates a flush job for one aggregate delta.
func NewAggregateFlushJob(repo repository.Aggregates, delta domain.AggregateDelta, maxRetries int, retryDelay time.Duration) *AggregateFlushJob {
	return &AggregateFlushJob{
		repo:       repo,
		delta:      delta,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}
}

// Process applies the delta, retrying transient failures.
func (j *AggregateFlushJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= j.maxRetries; attempt++ {
		if attempt > 0 {
			log.Warn(LogMsgAggregateFlushRetry,
				"player_id", j.delta.PlayerID,
				"attempt", attempt,
				"error", lastErr)
			select {
			case <-time.After(j.retryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = j.repo.IncrementAggregate(ctx, j.delta)
		if lastErr == nil {
			return nil
		}
	}

	log.Error(LogMsgAggregateFlushDropped,
		"player_id", j.delta.PlayerID,
		"damage", j.delta.Damage,
		"error", lastErr)
	return lastErr
}
