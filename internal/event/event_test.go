package event

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tovald/bossraid/internal/domain"
)

func TestMemoryBusPublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), NewBossRageEvent(uuid.New(), 1))
	assert.NoError(t, err)
}

func TestMemoryBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	var calls int32
	handler := func(ctx context.Context, e Event) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}

	bus.Subscribe(BossRage, handler)
	bus.Subscribe(BossRage, handler)
	bus.Subscribe(BossKilled, handler) // different type, must not fire

	err := bus.Publish(context.Background(), NewBossRageEvent(uuid.New(), 2))
	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestMemoryBusCollectsHandlerErrors(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(BossState, func(ctx context.Context, e Event) error {
		return errors.New("subscriber down")
	})
	bus.Subscribe(BossState, func(ctx context.Context, e Event) error {
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: BossState})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "subscriber down")
}

func TestNewBossKilledEventTruncatesLeaderboard(t *testing.T) {
	entries := make([]domain.LeaderboardEntry, domain.KillLeaderboardSize+5)
	for i := range entries {
		entries[i] = domain.LeaderboardEntry{Rank: i + 1}
	}
	summary := &domain.EncounterSummary{
		EncounterID: uuid.New(),
		BossName:    "Gravemaw",
		Entries:     entries,
	}

	evt := NewBossKilledEvent(summary)
	payload, ok := evt.Payload.(BossKilledPayloadV1)
	assert.True(t, ok)
	assert.Len(t, payload.Leaderboard, domain.KillLeaderboardSize)
	assert.Equal(t, "Gravemaw", payload.BossName)
}

func TestNewBossRageEventMultiplier(t *testing.T) {
	evt := NewBossRageEvent(uuid.New(), 3)
	payload, ok := evt.Payload.(BossRagePayloadV1)
	assert.True(t, ok)
	assert.Equal(t, 3, payload.Phase)
	assert.Equal(t, 2.0, payload.Multiplier)
}
