package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tovald/bossraid/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Raid event types
const (
	BossState   Type = "boss.state"
	BossRage    Type = "boss.rage"
	BossKilled  Type = "boss.killed"
	BossRespawn Type = "boss.respawn"

	RewardsDistributed  Type = "rewards.distributed"
	RewardPersistFailed Type = "reward.persist_failed"
)

// Typed event payloads

// BossStatePayloadV1 carries the periodic and on-change boss snapshot.
type BossStatePayloadV1 struct {
	EncounterID string `json:"encounter_id"`
	BossID      string `json:"boss_id"`
	BossName    string `json:"boss_name"`
	HP          int64  `json:"hp"`
	MaxHP       int64  `json:"max_hp"`
	RagePhase   int    `json:"rage_phase"`
	State       string `json:"state"`
	OnlineCount int    `json:"online_count"`
}

// BossRagePayloadV1 is published only when the rage phase increases.
type BossRagePayloadV1 struct {
	EncounterID string  `json:"encounter_id"`
	Phase       int     `json:"phase"`
	Multiplier  float64 `json:"multiplier"`
}

// BossKilledPayloadV1 summarizes an encounter the moment it ends.
type BossKilledPayloadV1 struct {
	EncounterID     string                    `json:"encounter_id"`
	BossName        string                    `json:"boss_name"`
	FinalBlowPlayer domain.PlayerRef          `json:"final_blow_player"`
	TopDamagePlayer domain.PlayerRef          `json:"top_damage_player"`
	Leaderboard     []domain.LeaderboardEntry `json:"leaderboard"`
	RespawnAt       time.Time                 `json:"respawn_at"`
}

// BossRespawnPayloadV1 announces a fresh encounter.
type BossRespawnPayloadV1 struct {
	EncounterID string `json:"encounter_id"`
	BossID      string `json:"boss_id"`
	BossName    string `json:"boss_name"`
	HP          int64  `json:"hp"`
	MaxHP       int64  `json:"max_hp"`
}

// RewardsDistributedPayloadV1 reports how many reward records one death produced.
type RewardsDistributedPayloadV1 struct {
	EncounterID string `json:"encounter_id"`
	RewardCount int    `json:"reward_count"`
	Timestamp   int64  `json:"timestamp"`
}

// RewardPersistFailedPayloadV1 marks a reward record that exhausted its
// durable-write retries; the record itself rides along for replay.
type RewardPersistFailedPayloadV1 struct {
	Reward    domain.PendingReward `json:"reward"`
	LastError string               `json:"last_error"`
	Timestamp int64                `json:"timestamp"`
}

// Type-safe event constructors

// NewBossStateEvent creates a new boss state event.
func NewBossStateEvent(encounterID uuid.UUID, def domain.BossDefinition, hp int64, phase int, state domain.EncounterState, online int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BossState,
		Payload: BossStatePayloadV1{
			EncounterID: encounterID.String(),
			BossID:      def.ID,
			BossName:    def.Name,
			HP:          hp,
			MaxHP:       def.MaxHP,
			RagePhase:   phase,
			State:       string(state),
			OnlineCount: online,
		},
	}
}

// NewBossRageEvent creates a rage phase increase event.
func NewBossRageEvent(encounterID uuid.UUID, phase int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BossRage,
		Payload: BossRagePayloadV1{
			EncounterID: encounterID.String(),
			Phase:       phase,
			Multiplier:  domain.RageMultipliers[phase],
		},
	}
}

// NewBossKilledEvent creates the once-per-death kill summary event.
func NewBossKilledEvent(summary *domain.EncounterSummary) Event {
	board := summary.Entries
	if len(board) > domain.KillLeaderboardSize {
		board = board[:domain.KillLeaderboardSize]
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    BossKilled,
		Payload: BossKilledPayloadV1{
			EncounterID:     summary.EncounterID.String(),
			BossName:        summary.BossName,
			FinalBlowPlayer: summary.FinalBlow,
			TopDamagePlayer: summary.TopDamage,
			Leaderboard:     board,
			RespawnAt:       summary.RespawnAt,
		},
	}
}

// NewBossRespawnEvent creates a respawn announcement event.
func NewBossRespawnEvent(encounterID uuid.UUID, def domain.BossDefinition) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BossRespawn,
		Payload: BossRespawnPayloadV1{
			EncounterID: encounterID.String(),
			BossID:      def.ID,
			BossName:    def.Name,
			HP:          def.MaxHP,
			MaxHP:       def.MaxHP,
		},
	}
}

// NewRewardsDistributedEvent creates a distribution summary event.
func NewRewardsDistributedEvent(encounterID uuid.UUID, count int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardsDistributed,
		Payload: RewardsDistributedPayloadV1{
			EncounterID: encounterID.String(),
			RewardCount: count,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewRewardPersistFailedEvent records a reward write that could not be made durable.
func NewRewardPersistFailedEvent(reward domain.PendingReward, lastErr error) Event {
	msg := ""
	if lastErr != nil {
		msg = lastErr.Error()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardPersistFailed,
		Payload: RewardPersistFailedPayloadV1{
			Reward:    reward,
			LastError: msg,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers execute
// synchronously in subscription order; handler errors are collected, not
// short-circuited.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
