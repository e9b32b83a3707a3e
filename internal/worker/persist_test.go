package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/event"
)

// flakyRewardRepo fails a fixed number of times before succeeding.
type flakyRewardRepo struct {
	mu       sync.Mutex
	failures int
	calls    int
}

func (r *flakyRewardRepo) CreatePendingReward(_ context.Context, _ *domain.PendingReward) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.calls <= r.failures {
		return errors.New("connection refused")
	}
	return nil
}

func (r *flakyRewardRepo) ClaimPendingReward(context.Context, string, uuid.UUID) (*domain.RewardGrants, error) {
	return nil, domain.ErrRewardNotFound
}

func (r *flakyRewardRepo) GetPendingByPlayer(context.Context, string) ([]domain.PendingReward, error) {
	return nil, nil
}

type flakyAggregatesRepo struct {
	mu       sync.Mutex
	failures int
	calls    int
	deltas   []domain.AggregateDelta
}

func (r *flakyAggregatesRepo) IncrementAggregate(_ context.Context, delta domain.AggregateDelta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.calls <= r.failures {
		return errors.New("connection refused")
	}
	r.deltas = append(r.deltas, delta)
	return nil
}

func (r *flakyAggregatesRepo) TopByLifetimeDamage(context.Context, int) ([]domain.AllTimeEntry, error) {
	return nil, nil
}

func testReward() domain.PendingReward {
	return domain.PendingReward{
		ID:          uuid.New(),
		PlayerID:    "p1",
		EncounterID: uuid.New(),
		Bundle:      domain.RewardBundle{BronzeChests: 1},
	}
}

func TestRewardPersistJob_RetriesThenSucceeds(t *testing.T) {
	repo := &flakyRewardRepo{failures: 2}
	job := NewRewardPersistJob(repo, event.NewMemoryBus(), testReward(), 3, time.Millisecond)

	err := job.Process(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, repo.calls)
}

func TestRewardPersistJob_ExhaustionPublishesFailureEvent(t *testing.T) {
	repo := &flakyRewardRepo{failures: 10}
	bus := event.NewMemoryBus()

	var mu sync.Mutex
	var failed []event.Event
	bus.Subscribe(event.RewardPersistFailed, func(_ context.Context, evt event.Event) error {
		mu.Lock()
		defer mu.Unlock()
		failed = append(failed, evt)
		return nil
	})

	reward := testReward()
	job := NewRewardPersistJob(repo, bus, reward, 2, time.Millisecond)

	err := job.Process(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, repo.calls)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, failed, 1)
	payload := failed[0].Payload.(event.RewardPersistFailedPayloadV1)
	assert.Equal(t, reward.ID, payload.Reward.ID)
	assert.Contains(t, payload.LastError, "connection refused")
}

func TestAggregateFlushJob_RetriesThenSucceeds(t *testing.T) {
	repo := &flakyAggregatesRepo{failures: 1}
	delta := domain.AggregateDelta{PlayerID: "p1", Damage: 500, Clicks: 50, BossKills: 1}
	job := NewAggregateFlushJob(repo, delta, 2, time.Millisecond)

	err := job.Process(context.Background())
	require.NoError(t, err)
	require.Len(t, repo.deltas, 1)
	assert.Equal(t, delta, repo.deltas[0])
}

func TestAggregateFlusher_DeliversThroughPool(t *testing.T) {
	repo := &flakyAggregatesRepo{}
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	flusher := NewAggregateFlusher(repo, pool, 1, time.Millisecond)
	flusher.Increment(domain.AggregateDelta{PlayerID: "p1", Damage: 100})

	require.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return len(repo.deltas) == 1
	}, time.Second, 5*time.Millisecond)
}
