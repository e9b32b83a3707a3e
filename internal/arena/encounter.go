package arena

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tovald/bossraid/internal/combat"
	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/event"
	"github.com/tovald/bossraid/internal/logger"
	"github.com/tovald/bossraid/internal/metrics"
)

// applyTapBatch is the hot path: validate, spend energy, roll damage, apply
// it to the boss and handle a possible kill. Runs on the arena goroutine.
func (a *Arena) applyTapBatch(ctx context.Context, playerID string, count int) (*TapResult, error) {
	s, ok := a.sessions[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotInArena
	}
	a.rolloverIfStale(s)

	if count <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if a.enc.State != domain.EncounterAlive {
		return nil, domain.ErrEncounterNotAlive
	}
	if count > a.cfg.MaxTapBatch {
		count = a.cfg.MaxTapBatch
	}

	cost := count * a.cfg.TapEnergyCost
	if s.Energy < cost {
		return &TapResult{EnergyRemaining: s.Energy}, domain.ErrInsufficientEnergy
	}
	s.Energy -= cost

	batch := combat.Batch(s.Stats, domain.RageMultipliers[a.enc.RagePhase], a.enc.Definition.Defense, count, a.rng)

	// Overkill clamp: the boss absorbs at most its remaining HP, so summed
	// accepted damage across all players equals exactly MaxHP at death.
	accepted := batch.TotalDamage
	if accepted > a.enc.CurrentHP {
		accepted = a.enc.CurrentHP
	}
	a.enc.CurrentHP -= accepted

	s.SessionDamage += accepted
	s.SessionClicks += count
	s.SessionCrits += batch.Crits
	a.evalEligibility(s)

	metrics.TapsApplied.Add(float64(count))
	metrics.DamageDealt.Add(float64(accepted))
	metrics.CritsLanded.Add(float64(batch.Crits))

	a.updateRage(ctx)

	res := &TapResult{
		AcceptedTaps:    count,
		AcceptedDamage:  accepted,
		Crits:           batch.Crits,
		EnergyRemaining: s.Energy,
	}

	if a.enc.CurrentHP == 0 {
		res.BossKilled = true
		a.onBossDefeated(ctx, s)
	}

	return res, nil
}

// updateRage recomputes the rage phase from current HP. Phases only climb;
// an encounter never calms down.
func (a *Arena) updateRage(ctx context.Context) {
	next := domain.RagePhaseFor(a.enc.CurrentHP, a.enc.Definition.MaxHP)
	if next <= a.enc.RagePhase {
		return
	}
	a.enc.RagePhase = next
	metrics.RagePhases.WithLabelValues(a.enc.Definition.ID, strconv.Itoa(next)).Inc()

	a.publish(ctx, event.NewBossRageEvent(a.enc.EncounterID, next))

	logger.FromContext(ctx).Info("Boss entered rage phase",
		"boss", a.enc.Definition.ID,
		"rage_phase", next,
		"hp", a.enc.CurrentHP)
}

// onBossDefeated runs the full death transition while still inside the same
// command that landed the final blow: freeze standings, distribute rewards,
// flush session counters into lifetime aggregates and arm the respawn timer.
func (a *Arena) onBossDefeated(ctx context.Context, killer *domain.CombatSession) {
	now := a.now()
	a.enc.State = domain.EncounterDefeated
	a.enc.DefeatedAt = now
	respawnAt := now.Add(a.cfg.RespawnDelay)
	a.enc.RespawnAt = respawnAt

	log := logger.FromContext(ctx)
	log.Info("Boss defeated",
		"boss", a.enc.Definition.ID,
		"encounter_id", a.enc.EncounterID,
		"final_blow", killer.PlayerID,
		"online", len(a.sessions))
	metrics.BossesKilled.WithLabelValues(a.enc.Definition.ID).Inc()

	summary := a.buildSummary(killer, now, respawnAt)
	a.previous = summary

	rewards := a.distributor.Distribute(ctx, summary)
	log.Info("Rewards distributed",
		"encounter_id", a.enc.EncounterID,
		"reward_count", len(rewards))

	// Flush every participant's counters exactly once: the flush here plus
	// the counter reset below means a later disconnect only flushes damage
	// dealt after this kill.
	for _, s := range a.sessions {
		if s.BoundEncounterID != a.enc.EncounterID {
			continue
		}
		delta := domain.AggregateDelta{
			PlayerID:    s.PlayerID,
			DisplayName: s.DisplayName,
			Damage:      s.SessionDamage,
			Clicks:      s.SessionClicks,
		}
		if s.PlayerID == killer.PlayerID {
			delta.BossKills = 1
		}
		a.sink.Increment(delta)
		s.Rollover(a.enc.EncounterID)
	}

	a.publish(ctx, event.NewBossKilledEvent(summary))

	a.enc.State = domain.EncounterRespawning

	encounterID := a.enc.EncounterID
	time.AfterFunc(a.cfg.RespawnDelay, func() {
		select {
		case a.cmds <- respawnFired{encounterID: encounterID}:
		case <-a.quit:
		}
	})
}

// handleRespawn advances the rotation and brings the next boss up at full
// HP. Stale timers for an older encounter are ignored.
func (a *Arena) handleRespawn(ctx context.Context, encounterID uuid.UUID) {
	if a.enc.EncounterID != encounterID || a.enc.State != domain.EncounterRespawning {
		return
	}

	a.rosterIdx = (a.rosterIdx + 1) % len(a.roster)
	a.enc = a.spawn(a.roster[a.rosterIdx])

	for _, s := range a.sessions {
		s.Rollover(a.enc.EncounterID)
	}

	logger.FromContext(ctx).Info("Boss respawned",
		"boss", a.enc.Definition.ID,
		"encounter_id", a.enc.EncounterID,
		"max_hp", a.enc.Definition.MaxHP)

	a.publish(ctx, event.NewBossRespawnEvent(a.enc.EncounterID, a.enc.Definition))
	a.publishState(ctx)
}

// buildSummary freezes the final standings of the dying encounter.
func (a *Arena) buildSummary(killer *domain.CombatSession, defeatedAt, respawnAt time.Time) *domain.EncounterSummary {
	entries := a.rankedEntries()

	var total int64
	for i := range entries {
		total += entries[i].Damage
		if entries[i].PlayerID == killer.PlayerID {
			entries[i].IsFinalBlow = true
		}
	}
	if len(entries) > 0 {
		entries[0].IsTopDamage = true
	}
	applyDamagePercent(entries, total)

	summary := &domain.EncounterSummary{
		EncounterID: a.enc.EncounterID,
		BossID:      a.enc.Definition.ID,
		BossName:    a.enc.Definition.Name,
		MaxHP:       a.enc.Definition.MaxHP,
		TotalDamage: total,
		FinalBlow:   domain.PlayerRef{PlayerID: killer.PlayerID, DisplayName: killer.DisplayName, Damage: killer.SessionDamage},
		Entries:     entries,
		DefeatedAt:  defeatedAt,
		RespawnAt:   respawnAt,
	}
	if len(entries) > 0 {
		summary.TopDamage = domain.PlayerRef{
			PlayerID:    entries[0].PlayerID,
			DisplayName: entries[0].DisplayName,
			Damage:      entries[0].Damage,
		}
	}
	return summary
}

// rankedEntries sorts current-encounter sessions by damage, breaking ties by
// join order so standings are stable across reads.
func (a *Arena) rankedEntries() []domain.LeaderboardEntry {
	sessions := make([]*domain.CombatSession, 0, len(a.sessions))
	for _, s := range a.sessions {
		if s.BoundEncounterID == a.enc.EncounterID {
			sessions = append(sessions, s)
		}
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].SessionDamage != sessions[j].SessionDamage {
			return sessions[i].SessionDamage > sessions[j].SessionDamage
		}
		return sessions[i].JoinOrder < sessions[j].JoinOrder
	})

	entries := make([]domain.LeaderboardEntry, 0, len(sessions))
	for i, s := range sessions {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:        i + 1,
			PlayerID:    s.PlayerID,
			DisplayName: s.DisplayName,
			Damage:      s.SessionDamage,
			Eligible:    s.Eligible,
		})
	}
	return entries
}

// liveEntries is the read-side of rankedEntries with percentages filled in.
func (a *Arena) liveEntries() []domain.LeaderboardEntry {
	entries := a.rankedEntries()
	var total int64
	for i := range entries {
		total += entries[i].Damage
	}
	applyDamagePercent(entries, total)
	return entries
}

// applyDamagePercent fills each entry's share of the total damage dealt.
// Zero total leaves every share at zero.
func applyDamagePercent(entries []domain.LeaderboardEntry, total int64) {
	if total <= 0 {
		return
	}
	for i := range entries {
		entries[i].DamagePercent = float64(entries[i].Damage) / float64(total) * 100
	}
}

func (a *Arena) bossStatus() BossStatus {
	status := BossStatus{
		EncounterID: a.enc.EncounterID,
		BossID:      a.enc.Definition.ID,
		BossName:    a.enc.Definition.Name,
		HP:          a.enc.CurrentHP,
		MaxHP:       a.enc.Definition.MaxHP,
		RagePhase:   a.enc.RagePhase,
		State:       a.enc.State,
		OnlineCount: len(a.sessions),
	}
	if !a.enc.RespawnAt.IsZero() {
		respawnAt := a.enc.RespawnAt
		status.RespawnAt = &respawnAt
	}
	return status
}

// publishState pushes the periodic boss snapshot consumed by SSE clients.
func (a *Arena) publishState(ctx context.Context) {
	a.publish(ctx, event.NewBossStateEvent(
		a.enc.EncounterID,
		a.enc.Definition,
		a.enc.CurrentHP,
		a.enc.RagePhase,
		a.enc.State,
		len(a.sessions),
	))
}

// PublishState is the broadcast hook driven by the scheduler.
func (a *Arena) PublishState(ctx context.Context) error {
	done := make(chan struct{})
	if err := a.enqueue(ctx, broadcastCmd{done: done}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
