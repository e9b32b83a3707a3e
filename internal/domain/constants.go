package domain

import "time"

// =============================================================================
// Rage Phases
// =============================================================================

const (
	// RagePhaseMax is the highest rage phase a boss can reach
	RagePhaseMax = 3
)

// Rage phase HP thresholds as a fraction of max HP. A boss at or below a
// threshold is in at least that phase.
const (
	RageThresholdPhase1 = 0.75
	RageThresholdPhase2 = 0.50
	RageThresholdPhase3 = 0.25
)

// RageMultipliers maps rage phase to the boss-wide damage multiplier.
var RageMultipliers = [RagePhaseMax + 1]float64{1.0, 1.2, 1.5, 2.0}

// =============================================================================
// Eligibility
// =============================================================================

const (
	// EligibilityActivityMs is the sustained-presence gate: a player whose
	// accumulated activity time reaches this value earns reward eligibility.
	EligibilityActivityMs = 60_000

	// EligibilityActionCount is the action gate: clicks plus skill casts
	// reaching this count earns eligibility regardless of presence time.
	EligibilityActionCount = 20

	// ActivityPingCapMs caps the credit from a single activity ping so a
	// stale or replayed ping cannot inflate activity time.
	ActivityPingCapMs = 10_000
)

// =============================================================================
// Combat
// =============================================================================

const (
	// DefaultMaxTapBatch is the server-side ceiling on taps per batch.
	DefaultMaxTapBatch = 50

	// DefaultTapEnergyCost is the energy cost per tap.
	DefaultTapEnergyCost = 1

	// DefaultEnergyMax is the energy cap per session.
	DefaultEnergyMax = 500

	// DefaultEnergyRegenPerTick is energy restored per regen tick.
	DefaultEnergyRegenPerTick = 25
)

// =============================================================================
// Rewards
// =============================================================================

const (
	// MaxRankedReward is the deepest rank that receives a rank-specific
	// bundle; eligible players beyond it receive the baseline bundle.
	MaxRankedReward = 100

	// KillLeaderboardSize is how many entries the kill event carries.
	KillLeaderboardSize = 10
)

// Crystal bonus per chest tier, summed into the reward bundle.
const (
	CrystalsPerGoldChest   = 50
	CrystalsPerSilverChest = 20
	CrystalsPerBronzeChest = 5
)

// =============================================================================
// Timing defaults
// =============================================================================

const (
	// DefaultRespawnDelay is the pause between a boss death and the next
	// encounter going live. Tunable via config.
	DefaultRespawnDelay = 30 * time.Second

	// DefaultBroadcastInterval is how often boss state is pushed to
	// subscribers regardless of mutations.
	DefaultBroadcastInterval = 2 * time.Second

	// DefaultEnergyRegenInterval is how often session energy regenerates.
	DefaultEnergyRegenInterval = 10 * time.Second
)
