package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is one ranked row of a live or snapshot leaderboard.
// It is derived from session data and never stored.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	PlayerID      string  `json:"player_id"`
	DisplayName   string  `json:"display_name"`
	Damage        int64   `json:"damage"`
	DamagePercent float64 `json:"damage_percent"`
	IsFinalBlow   bool    `json:"is_final_blow"`
	IsTopDamage   bool    `json:"is_top_damage"`
	Eligible      bool    `json:"-"`
}

// PlayerRef identifies a player with their damage for kill summaries.
type PlayerRef struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Damage      int64  `json:"damage"`
}

// EncounterSummary is the immutable snapshot taken at the moment of a boss
// death. Exactly one is retained, replacing the previous one.
type EncounterSummary struct {
	EncounterID uuid.UUID          `json:"encounter_id"`
	BossID      string             `json:"boss_id"`
	BossName    string             `json:"boss_name"`
	MaxHP       int64              `json:"max_hp"`
	TotalDamage int64              `json:"total_damage"`
	FinalBlow   PlayerRef          `json:"final_blow"`
	TopDamage   PlayerRef          `json:"top_damage"`
	Entries     []LeaderboardEntry `json:"entries"`
	DefeatedAt  time.Time          `json:"defeated_at"`
	RespawnAt   time.Time          `json:"respawn_at"`
}

// AllTimeEntry is one row of the lifetime leaderboard, sourced from
// durable per-player aggregates.
type AllTimeEntry struct {
	Rank        int    `json:"rank"`
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	TotalDamage int64  `json:"total_damage"`
	TotalClicks int64  `json:"total_clicks"`
	BossKills   int    `json:"boss_kills"`
}
