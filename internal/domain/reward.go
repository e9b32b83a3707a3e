package domain

import (
	"time"

	"github.com/google/uuid"
)

// RewardBundle is the chest/ticket/badge payout for one rank band.
type RewardBundle struct {
	BronzeChests   int    `json:"bronze_chests"`
	SilverChests   int    `json:"silver_chests"`
	GoldChests     int    `json:"gold_chests"`
	Crystals       int    `json:"crystals"`
	LotteryTickets int    `json:"lottery_tickets"`
	BadgeID        string `json:"badge_id,omitempty"`
	BadgeDays      int    `json:"badge_days,omitempty"`
}

// PendingReward is the durable, claimable record created once per eligible
// player when an encounter ends. At most one exists per
// (player, encounter); creation is insert-if-absent.
type PendingReward struct {
	ID          uuid.UUID    `json:"id"`
	PlayerID    string       `json:"player_id"`
	EncounterID uuid.UUID    `json:"encounter_id"`
	// Rank is nil for eligible players beyond the ranked bands.
	Rank      *int         `json:"rank,omitempty"`
	Bundle    RewardBundle `json:"bundle"`
	Claimed   bool         `json:"claimed"`
	CreatedAt time.Time    `json:"created_at"`
	ClaimedAt *time.Time   `json:"claimed_at,omitempty"`
}

// RewardGrants is what a successful claim hands to the player.
type RewardGrants struct {
	RewardID       uuid.UUID `json:"reward_id"`
	BronzeChests   int       `json:"bronze_chests"`
	SilverChests   int       `json:"silver_chests"`
	GoldChests     int       `json:"gold_chests"`
	Crystals       int       `json:"crystals"`
	LotteryTickets int       `json:"lottery_tickets"`
	BadgeID        string    `json:"badge_id,omitempty"`
	BadgeDays      int       `json:"badge_days,omitempty"`
}

// GrantsFrom builds the claim result from a reward record.
func GrantsFrom(r *PendingReward) *RewardGrants {
	return &RewardGrants{
		RewardID:       r.ID,
		BronzeChests:   r.Bundle.BronzeChests,
		SilverChests:   r.Bundle.SilverChests,
		GoldChests:     r.Bundle.GoldChests,
		Crystals:       r.Bundle.Crystals,
		LotteryTickets: r.Bundle.LotteryTickets,
		BadgeID:        r.Bundle.BadgeID,
		BadgeDays:      r.Bundle.BadgeDays,
	}
}
