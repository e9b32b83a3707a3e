package combat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tovald/bossraid/internal/domain"
)

// fixedRNG returns a scripted sequence of values, repeating the last one.
type fixedRNG struct {
	values []float64
	idx    int
}

func (f *fixedRNG) Float64() float64 {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

func TestTapDamageBaseline(t *testing.T) {
	// variance draw 0.5 -> multiplier 1.0, crit draw 0.5 -> no crit at 5%
	rng := &fixedRNG{values: []float64{0.5, 0.5}}
	stats := domain.PlayerStats{Power: 10, Strength: 0, Luck: 0}

	res := TapDamage(stats, 1.0, 0, rng)

	assert.Equal(t, int64(10), res.Damage)
	assert.False(t, res.Crit)
}

func TestTapDamageStrengthScaling(t *testing.T) {
	rng := &fixedRNG{values: []float64{0.5, 0.5}}
	stats := domain.PlayerStats{Power: 100, Strength: 5, Luck: 0}

	// 100 * (1 + 5*0.08) = 140
	res := TapDamage(stats, 1.0, 0, rng)
	assert.Equal(t, int64(140), res.Damage)
}

func TestTapDamageCritDoubles(t *testing.T) {
	// crit draw 0.0 always crits
	rng := &fixedRNG{values: []float64{0.5, 0.0}}
	stats := domain.PlayerStats{Power: 10, Strength: 0, Luck: 0}

	res := TapDamage(stats, 1.0, 0, rng)
	assert.True(t, res.Crit)
	assert.Equal(t, int64(20), res.Damage)
}

func TestTapDamageCritChanceCapped(t *testing.T) {
	// Luck 1000 would push chance far past the cap; a draw of 0.76 must miss.
	rng := &fixedRNG{values: []float64{0.5, 0.76}}
	stats := domain.PlayerStats{Power: 10, Strength: 0, Luck: 1000}

	res := TapDamage(stats, 1.0, 0, rng)
	assert.False(t, res.Crit)

	rng = &fixedRNG{values: []float64{0.5, 0.74}}
	res = TapDamage(stats, 1.0, 0, rng)
	assert.True(t, res.Crit)
}

func TestTapDamageRageMultiplier(t *testing.T) {
	stats := domain.PlayerStats{Power: 100, Strength: 0, Luck: 0}

	for phase, want := range map[int]int64{0: 100, 1: 120, 2: 150, 3: 200} {
		rng := &fixedRNG{values: []float64{0.5, 0.5}}
		res := TapDamage(stats, domain.RageMultipliers[phase], 0, rng)
		assert.Equal(t, want, res.Damage, "phase %d", phase)
	}
}

func TestTapDamageDefenseFloor(t *testing.T) {
	rng := &fixedRNG{values: []float64{0.5, 0.5}}
	stats := domain.PlayerStats{Power: 10, Strength: 0, Luck: 0}

	// Defense exceeding raw damage still lands a minimum of 1.
	res := TapDamage(stats, 1.0, 9999, rng)
	assert.Equal(t, int64(1), res.Damage)
}

func TestTapDamageVarianceBounds(t *testing.T) {
	stats := domain.PlayerStats{Power: 100, Strength: 0, Luck: 0}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		res := TapDamage(stats, 1.0, 0, rng)
		dmg := res.Damage
		if res.Crit {
			dmg /= 2
		}
		assert.GreaterOrEqual(t, dmg, int64(90))
		assert.LessOrEqual(t, dmg, int64(110))
	}
}

func TestBatchSumsDamageAndCrits(t *testing.T) {
	stats := domain.PlayerStats{Power: 10, Strength: 0, Luck: 0}

	// Two taps: first crits, second does not.
	rng := &fixedRNG{values: []float64{0.5, 0.0, 0.5, 0.5}}
	out := Batch(stats, 1.0, 0, 2, rng)

	assert.Equal(t, int64(30), out.TotalDamage)
	assert.Equal(t, 1, out.Crits)
}

// One hundred no-crit taps from a power-10 attacker land in [900, 1100].
func TestBatchHundredTapRange(t *testing.T) {
	stats := domain.PlayerStats{Power: 10, Strength: 0, Luck: 0}
	rng := &fixedRNG{values: []float64{0.5, 0.99}} // repeats: mid variance, no crit

	out := Batch(stats, 1.0, 0, 100, rng)
	assert.Equal(t, int64(1000), out.TotalDamage)
	assert.Zero(t, out.Crits)
}
