package domain

import (
	"time"

	"github.com/google/uuid"
)

// EncounterState is the lifecycle state of a boss encounter
type EncounterState string

const (
	EncounterAlive      EncounterState = "alive"
	EncounterDefeated   EncounterState = "defeated"
	EncounterRespawning EncounterState = "respawning"
)

// BossDefinition is static roster content for one boss in the rotation.
type BossDefinition struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	MaxHP   int64  `json:"max_hp"`
	Defense int    `json:"defense"`
}

// BossEncounter is one lifetime of a boss instance, from spawn to death.
// The encounter ID changes on every respawn so session counters can detect
// rollover.
type BossEncounter struct {
	EncounterID uuid.UUID
	Definition  BossDefinition
	CurrentHP   int64
	RagePhase   int
	State       EncounterState
	SpawnedAt   time.Time
	DefeatedAt  time.Time
	RespawnAt   time.Time
}

// RagePhaseFor computes the rage phase implied by the remaining HP fraction.
// Callers must only apply the result if it is higher than the current phase;
// rage never reverses within one encounter.
func RagePhaseFor(currentHP, maxHP int64) int {
	if maxHP <= 0 {
		return 0
	}
	frac := float64(currentHP) / float64(maxHP)
	switch {
	case frac <= RageThresholdPhase3:
		return 3
	case frac <= RageThresholdPhase2:
		return 2
	case frac <= RageThresholdPhase1:
		return 1
	default:
		return 0
	}
}
