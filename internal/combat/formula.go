// Package combat holds the pure per-tap damage formula. It has no state;
// randomness is injected so every path is deterministic under test.
package combat

import (
	"math"

	"github.com/tovald/bossraid/internal/domain"
)

// RNG is the randomness source for the formula. *math/rand.Rand satisfies it.
type RNG interface {
	Float64() float64
}

// Result is the outcome of a single tap.
type Result struct {
	Damage int64
	Crit   bool
}

const (
	strengthScaling = 0.08
	baseCritChance  = 0.05
	critPerLuck     = 0.03
	maxCritChance   = 0.75
	critMultiplier  = 2.0
	varianceMin     = 0.9
	varianceSpan    = 0.2
)

// TapDamage computes the damage of one tap. The formula draws two values
// from rng in a fixed order: variance first, then the crit roll.
// Damage is floored at 1 after defense so a tap is never wasted entirely.
func TapDamage(attacker domain.PlayerStats, rageMultiplier float64, defense int, rng RNG) Result {
	base := float64(attacker.Power) * (1 + float64(attacker.Strength)*strengthScaling)

	variance := varianceMin + varianceSpan*rng.Float64()
	raw := base * variance

	critChance := baseCritChance + float64(attacker.Luck)*critPerLuck
	if critChance > maxCritChance {
		critChance = maxCritChance
	}

	crit := rng.Float64() < critChance
	if crit {
		raw *= critMultiplier
	}

	raw *= rageMultiplier

	dmg := int64(math.Floor(raw - float64(defense)))
	if dmg < 1 {
		dmg = 1
	}

	return Result{Damage: dmg, Crit: crit}
}

// BatchDamage runs the formula count times and sums the results.
type BatchResult struct {
	TotalDamage int64
	Crits       int
}

// Batch applies count taps and accumulates total damage and crit count.
func Batch(attacker domain.PlayerStats, rageMultiplier float64, defense int, count int, rng RNG) BatchResult {
	var out BatchResult
	for i := 0; i < count; i++ {
		r := TapDamage(attacker, rageMultiplier, defense, rng)
		out.TotalDamage += r.Damage
		if r.Crit {
			out.Crits++
		}
	}
	return out
}
