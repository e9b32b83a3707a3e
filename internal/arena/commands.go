package arena

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tovald/bossraid/internal/domain"
)

const commandBuffer = 256

// TapResult reports the outcome of a tap batch as applied by the arena.
type TapResult struct {
	AcceptedTaps    int   `json:"acceptedTaps"`
	AcceptedDamage  int64 `json:"acceptedDamage"`
	Crits           int   `json:"crits"`
	EnergyRemaining int   `json:"energyRemaining"`
	BossKilled      bool  `json:"bossKilled"`
}

// ActivityStatus is the state returned after an activity ping.
type ActivityStatus struct {
	ActivityTimeMs int64 `json:"activityTimeMs"`
	Actions        int   `json:"actions"`
	Eligible       bool  `json:"eligible"`
}

// BossStatus is a point-in-time snapshot of the current encounter.
type BossStatus struct {
	EncounterID uuid.UUID             `json:"encounterId"`
	BossID      string                `json:"bossId"`
	BossName    string                `json:"bossName"`
	HP          int64                 `json:"hp"`
	MaxHP       int64                 `json:"maxHp"`
	RagePhase   int                   `json:"ragePhase"`
	State       domain.EncounterState `json:"state"`
	RespawnAt   *time.Time            `json:"respawnAt,omitempty"`
	OnlineCount int                   `json:"onlineCount"`
}

type command interface{}

type tapCmd struct {
	playerID string
	count    int
	reply    chan tapReply
}

type tapReply struct {
	res *TapResult
	err error
}

type pingCmd struct {
	playerID string
	actions  int
	reply    chan pingReply
}

type pingReply struct {
	status *ActivityStatus
	err    error
}

type joinCmd struct {
	playerID    string
	displayName string
	stats       domain.PlayerStats
	reply       chan error
}

type leaveCmd struct {
	playerID string
	reply    chan error
}

type regenCmd struct {
	done chan struct{}
}

type broadcastCmd struct {
	done chan struct{}
}

type stateCmd struct {
	reply chan BossStatus
}

type liveCmd struct {
	reply chan []domain.LeaderboardEntry
}

type prevCmd struct {
	reply chan *domain.EncounterSummary
}

// respawnFired is enqueued by the respawn timer. The encounter id guards
// against a stale timer racing a shutdown-restart cycle.
type respawnFired struct {
	encounterID uuid.UUID
}

// ApplyTapBatch applies count taps for playerID and returns the accepted
// damage. Counts above the batch cap are clamped, not rejected.
func (a *Arena) ApplyTapBatch(ctx context.Context, playerID string, count int) (*TapResult, error) {
	reply := make(chan tapReply, 1)
	if err := a.enqueue(ctx, tapCmd{playerID: playerID, count: count, reply: reply}); err != nil {
		return nil, err
	}
	select {
	case r := <-reply:
		return r.res, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// RecordActivityPing credits presence time and out-of-band actions toward
// reward eligibility.
func (a *Arena) RecordActivityPing(ctx context.Context, playerID string, actions int) (*ActivityStatus, error) {
	reply := make(chan pingReply, 1)
	if err := a.enqueue(ctx, pingCmd{playerID: playerID, actions: actions, reply: reply}); err != nil {
		return nil, err
	}
	select {
	case r := <-reply:
		return r.status, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Join registers a combat session for the player, or refreshes stats on
// reconnect.
func (a *Arena) Join(ctx context.Context, playerID, displayName string, stats domain.PlayerStats) error {
	reply := make(chan error, 1)
	if err := a.enqueue(ctx, joinCmd{playerID: playerID, displayName: displayName, stats: stats, reply: reply}); err != nil {
		return err
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Leave flushes the session's counters into lifetime aggregates and removes
// it from the arena.
func (a *Arena) Leave(ctx context.Context, playerID string) error {
	reply := make(chan error, 1)
	if err := a.enqueue(ctx, leaveCmd{playerID: playerID, reply: reply}); err != nil {
		return err
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RegenTick restores energy for every online session. Driven by the
// scheduler.
func (a *Arena) RegenTick(ctx context.Context) error {
	done := make(chan struct{})
	if err := a.enqueue(ctx, regenCmd{done: done}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// BossStatus returns the current encounter snapshot.
func (a *Arena) BossStatus(ctx context.Context) (BossStatus, error) {
	reply := make(chan BossStatus, 1)
	if err := a.enqueue(ctx, stateCmd{reply: reply}); err != nil {
		return BossStatus{}, err
	}
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return BossStatus{}, ctx.Err()
	}
}

// LiveLeaderboard returns the ranked standings for the current encounter.
func (a *Arena) LiveLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	reply := make(chan []domain.LeaderboardEntry, 1)
	if err := a.enqueue(ctx, liveCmd{reply: reply}); err != nil {
		return nil, err
	}
	select {
	case entries := <-reply:
		return entries, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// PreviousEncounter returns the frozen summary of the last defeated boss, or
// nil when no boss has died since startup.
func (a *Arena) PreviousEncounter(ctx context.Context) (*domain.EncounterSummary, error) {
	reply := make(chan *domain.EncounterSummary, 1)
	if err := a.enqueue(ctx, prevCmd{reply: reply}); err != nil {
		return nil, err
	}
	select {
	case summary := <-reply:
		return summary, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
