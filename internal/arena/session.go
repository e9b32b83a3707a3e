package arena

import (
	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/metrics"
)

// join creates a session bound to the current encounter. Joining while
// already online refreshes the display name and stats; counters are kept so
// a flaky client cannot reset its standings by re-joining.
func (a *Arena) join(playerID, displayName string, stats domain.PlayerStats) error {
	if playerID == "" {
		return domain.ErrInvalidInput
	}
	if s, ok := a.sessions[playerID]; ok {
		s.DisplayName = displayName
		s.Stats = stats
		return nil
	}

	a.sessions[playerID] = &domain.CombatSession{
		PlayerID:         playerID,
		DisplayName:      displayName,
		Stats:            stats,
		Energy:           a.cfg.EnergyMax,
		BoundEncounterID: a.enc.EncounterID,
		JoinOrder:        a.joinSeq,
	}
	a.joinSeq++
	metrics.PlayersOnline.Set(float64(len(a.sessions)))
	return nil
}

// leave flushes counters accumulated since the last flush into lifetime
// aggregates and destroys the session. The encounter-end flush has already
// zeroed older counters, so this cannot double count.
func (a *Arena) leave(playerID string) error {
	s, ok := a.sessions[playerID]
	if !ok {
		return domain.ErrPlayerNotInArena
	}

	if s.SessionDamage > 0 || s.SessionClicks > 0 {
		a.sink.Increment(domain.AggregateDelta{
			PlayerID:    s.PlayerID,
			DisplayName: s.DisplayName,
			Damage:      s.SessionDamage,
			Clicks:      s.SessionClicks,
		})
	}

	delete(a.sessions, playerID)
	metrics.PlayersOnline.Set(float64(len(a.sessions)))
	return nil
}

// recordActivityPing credits presence time since the previous ping, capped
// so an idle client cannot bank hours between two pings.
func (a *Arena) recordActivityPing(playerID string, actions int) (*ActivityStatus, error) {
	s, ok := a.sessions[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotInArena
	}
	if actions < 0 {
		return nil, domain.ErrInvalidInput
	}
	a.rolloverIfStale(s)

	now := a.now()
	if !s.LastPingAt.IsZero() {
		delta := now.Sub(s.LastPingAt).Milliseconds()
		if delta > domain.ActivityPingCapMs {
			delta = domain.ActivityPingCapMs
		}
		if delta > 0 {
			s.ActivityTimeMs += delta
		}
	}
	s.LastPingAt = now
	s.SkillCasts += actions
	a.evalEligibility(s)

	return &ActivityStatus{
		ActivityTimeMs: s.ActivityTimeMs,
		Actions:        s.Actions(),
		Eligible:       s.Eligible,
	}, nil
}

// evalEligibility flips the sticky eligibility flag once either gate is
// crossed. It never flips back within an encounter.
func (a *Arena) evalEligibility(s *domain.CombatSession) {
	if s.Eligible {
		return
	}
	if s.ActivityTimeMs >= domain.EligibilityActivityMs || s.Actions() >= domain.EligibilityActionCount {
		s.Eligible = true
	}
}

// rolloverIfStale lazily migrates a session whose counters still belong to a
// previous encounter. Bulk rollover at respawn covers connected sessions;
// this covers a session touched between spawn and its first command.
func (a *Arena) rolloverIfStale(s *domain.CombatSession) {
	if s.BoundEncounterID != a.enc.EncounterID {
		s.Rollover(a.enc.EncounterID)
	}
}

// regenTick restores energy for every online session up to the cap.
func (a *Arena) regenTick() {
	for _, s := range a.sessions {
		s.Energy += a.cfg.EnergyRegenPerTick
		if s.Energy > a.cfg.EnergyMax {
			s.Energy = a.cfg.EnergyMax
		}
	}
}
