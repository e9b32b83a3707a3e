package worker

import (
	"context"
)

// StateBroadcaster publishes the current boss snapshot to subscribers.
type StateBroadcaster interface {
	PublishState(ctx context.Context) error
}

// EnergyRegenerator restores energy for every online session.
type EnergyRegenerator interface {
	RegenTick(ctx context.Context) error
}

// BroadcastJob pushes the periodic boss.state snapshot. Scheduled at the
// configured broadcast interval.
type BroadcastJob struct {
	broadcaster StateBroadcaster
}

// NewBroadcastJob creates a broadcast job.
func NewBroadcastJob(broadcaster StateBroadcaster) *BroadcastJob {
	return &BroadcastJob{broadcaster: broadcaster}
}

// Process publishes one snapshot.
func (j *BroadcastJob) Process(ctx context.Context) error {
	return j.broadcaster.PublishState(ctx)
}

// RegenJob applies one energy regeneration tick. Scheduled at the configured
// regen interval.
type RegenJob struct {
	regenerator EnergyRegenerator
}

// NewRegenJob creates a regen job.
func NewRegenJob(regenerator EnergyRegenerator) *RegenJob {
	return &RegenJob{regenerator: regenerator}
}

// Process applies one tick.
func (j *RegenJob) Process(ctx context.Context) error {
	return j.regenerator.RegenTick(ctx)
}
