package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlayerStats are the attacker attributes feeding the damage formula.
type PlayerStats struct {
	Power    int `json:"power"`
	Strength int `json:"strength"`
	Luck     int `json:"luck"`
}

// CombatSession is the per-connected-participant record for the current
// encounter. All fields except Energy are encounter-scoped and reset at
// rollover; Energy is a player resource and survives respawns.
type CombatSession struct {
	PlayerID    string
	DisplayName string
	Stats       PlayerStats

	Energy int

	SessionDamage int64
	SessionClicks int
	SessionCrits  int
	SkillCasts    int

	ActivityTimeMs int64
	LastPingAt     time.Time
	Eligible       bool

	BoundEncounterID uuid.UUID

	// JoinOrder is a monotonically increasing sequence used as the stable
	// tie-break for equal damage.
	JoinOrder int
}

// Rollover resets all encounter-scoped counters and binds the session to a
// new encounter. Eligibility is cleared; energy is untouched.
func (s *CombatSession) Rollover(encounterID uuid.UUID) {
	s.SessionDamage = 0
	s.SessionClicks = 0
	s.SessionCrits = 0
	s.SkillCasts = 0
	s.ActivityTimeMs = 0
	s.LastPingAt = time.Time{}
	s.Eligible = false
	s.BoundEncounterID = encounterID
}

// Actions returns the count feeding the eligibility action gate.
func (s *CombatSession) Actions() int {
	return s.SessionClicks + s.SkillCasts
}

// AggregateDelta is a one-shot increment against a player's durable
// lifetime stats.
type AggregateDelta struct {
	PlayerID    string
	DisplayName string
	Damage      int64
	Clicks      int
	BossKills   int
}
