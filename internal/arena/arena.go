// Package arena owns all mutable raid state: the current boss encounter and
// every connected player's combat session. A single goroutine processes
// commands in arrival order, so batch application is serialized by
// construction and no lock guards the boss HP.
package arena

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/tovald/bossraid/internal/combat"
	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/event"
	"github.com/tovald/bossraid/internal/logger"
)

// Distributor produces pending rewards at the moment of a boss death. It is
// invoked inside the arena loop, so implementations must hand durable writes
// off to a queue rather than block.
type Distributor interface {
	Distribute(ctx context.Context, summary *domain.EncounterSummary) []domain.PendingReward
}

// AggregateSink receives one-shot lifetime-stat increments: the encounter-end
// flush, the disconnect flush, and kill credit. Implementations persist
// asynchronously.
type AggregateSink interface {
	Increment(delta domain.AggregateDelta)
}

// Config holds the arena tunables.
type Config struct {
	RespawnDelay       time.Duration
	MaxTapBatch        int
	TapEnergyCost      int
	EnergyMax          int
	EnergyRegenPerTick int
}

// Arena is the single-writer aggregate for one raid room.
type Arena struct {
	cfg    Config
	roster []domain.BossDefinition

	bus         event.Bus
	distributor Distributor
	sink        AggregateSink

	rng combat.RNG
	now func() time.Time

	// State below is owned exclusively by the Run goroutine.
	rosterIdx int
	enc       domain.BossEncounter
	sessions  map[string]*domain.CombatSession
	joinSeq   int
	previous  *domain.EncounterSummary

	cmds chan command
	quit chan struct{}
}

// Option customizes an Arena, used by tests to pin the clock and RNG.
type Option func(*Arena)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(a *Arena) { a.now = now }
}

// WithRNG overrides the randomness source for the damage formula.
func WithRNG(rng combat.RNG) Option {
	return func(a *Arena) { a.rng = rng }
}

// New creates an Arena with the first boss of the rotation already alive.
// The roster must be non-empty and pre-validated by the content loader.
func New(cfg Config, roster []domain.BossDefinition, bus event.Bus, distributor Distributor, sink AggregateSink, opts ...Option) *Arena {
	a := &Arena{
		cfg:         cfg,
		roster:      roster,
		bus:         bus,
		distributor: distributor,
		sink:        sink,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
		sessions:    make(map[string]*domain.CombatSession),
		cmds:        make(chan command, commandBuffer),
		quit:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.enc = a.spawn(a.roster[0])
	return a
}

// Run processes commands until ctx is cancelled. It must be called exactly
// once; all public methods enqueue onto its loop.
func (a *Arena) Run(ctx context.Context) {
	defer close(a.quit)

	log := logger.FromContext(ctx)
	log.Info("Arena running",
		"boss", a.enc.Definition.Name,
		"encounter_id", a.enc.EncounterID,
		"max_hp", a.enc.Definition.MaxHP)

	for {
		select {
		case cmd := <-a.cmds:
			a.handle(ctx, cmd)
		case <-ctx.Done():
			log.Info("Arena stopped", "online", len(a.sessions))
			return
		}
	}
}

func (a *Arena) handle(ctx context.Context, cmd command) {
	switch c := cmd.(type) {
	case tapCmd:
		res, err := a.applyTapBatch(ctx, c.playerID, c.count)
		c.reply <- tapReply{res: res, err: err}
	case pingCmd:
		status, err := a.recordActivityPing(c.playerID, c.actions)
		c.reply <- pingReply{status: status, err: err}
	case joinCmd:
		c.reply <- a.join(c.playerID, c.displayName, c.stats)
	case leaveCmd:
		c.reply <- a.leave(c.playerID)
	case regenCmd:
		a.regenTick()
		close(c.done)
	case broadcastCmd:
		a.publishState(ctx)
		close(c.done)
	case stateCmd:
		c.reply <- a.bossStatus()
	case liveCmd:
		c.reply <- a.liveEntries()
	case prevCmd:
		c.reply <- a.previous
	case respawnFired:
		a.handleRespawn(ctx, c.encounterID)
	}
}

// spawn builds a fresh encounter for the given definition.
func (a *Arena) spawn(def domain.BossDefinition) domain.BossEncounter {
	return domain.BossEncounter{
		EncounterID: uuid.New(),
		Definition:  def,
		CurrentHP:   def.MaxHP,
		RagePhase:   0,
		State:       domain.EncounterAlive,
		SpawnedAt:   a.now(),
	}
}

// enqueue submits a command, respecting caller cancellation and arena
// shutdown.
func (a *Arena) enqueue(ctx context.Context, cmd command) error {
	select {
	case a.cmds <- cmd:
		return nil
	case <-a.quit:
		return domain.ErrArenaClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// publish pushes an event without letting a subscriber failure corrupt the
// apply path: errors are carried by the resilient publisher, not returned
// into the loop.
func (a *Arena) publish(ctx context.Context, evt event.Event) {
	if err := a.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error("Failed to publish arena event",
			"event_type", evt.Type, "error", err)
	}
}
