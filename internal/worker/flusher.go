package worker

import (
	"context"
	"time"

	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/logger"
	"github.com/tovald/bossraid/internal/repository"
)

// AggregateFlusher queues lifetime-stat deltas onto the worker pool. It is
// the arena's sink: Increment never blocks the caller on the database.
type AggregateFlusher struct {
	repo       repository.Aggregates
	pool       *Pool
	maxRetries int
	retryDelay time.Duration
}

// NewAggregateFlusher creates a flusher backed by the given pool.
func NewAggregateFlusher(repo repository.Aggregates, pool *Pool, maxRetries int, retryDelay time.Duration) *AggregateFlusher {
	return &AggregateFlusher{
		repo:       repo,
		pool:       pool,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}
}

// Increment hands the delta to the pool. A saturated queue falls back to a
// detached goroutine so the delta is never dropped on the floor.
func (f *AggregateFlusher) Increment(delta domain.AggregateDelta) {
	job := NewAggregateFlushJob(f.repo, delta, f.maxRetries, f.retryDelay)
	if f.pool.TryEnqueue(job) {
		return
	}

	ctx := context.Background()
	logger.FromContext(ctx).Warn(LogMsgFlushQueueSaturated, "player_id", delta.PlayerID)
	go func() {
		if err := job.Process(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
		}
	}()
}
