// Package leaderboard exposes the three read-only ranked views: the live
// encounter standings, the frozen previous-encounter snapshot, and the
// durable all-time board.
package leaderboard

import (
	"context"
	"time"

	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/repository"
)

// Cache defaults for the all-time view.
const (
	DefaultCacheSize = 16
	DefaultCacheTTL  = 5 * time.Second

	// DefaultAllTimeLimit bounds the page when the caller does not ask for a
	// specific size.
	DefaultAllTimeLimit = 50
	MaxAllTimeLimit     = 200
)

// ArenaReader is the live-state source, implemented by the arena.
type ArenaReader interface {
	LiveLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	PreviousEncounter(ctx context.Context) (*domain.EncounterSummary, error)
}

// Service defines the interface for leaderboard reads
type Service interface {
	Live(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Previous(ctx context.Context) (*domain.EncounterSummary, error)
	AllTime(ctx context.Context, limit int) ([]domain.AllTimeEntry, error)
}

type service struct {
	arena ArenaReader
	repo  repository.Aggregates
	cache *allTimeCache
}

// NewService creates a new leaderboard service
func NewService(arena ArenaReader, repo repository.Aggregates) Service {
	return &service{
		arena: arena,
		repo:  repo,
		cache: newAllTimeCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

// Live returns the current encounter standings.
func (s *service) Live(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.arena.LiveLeaderboard(ctx)
}

// Previous returns the snapshot frozen at the last boss death, or nil when
// no boss has died since startup.
func (s *service) Previous(ctx context.Context) (*domain.EncounterSummary, error) {
	return s.arena.PreviousEncounter(ctx)
}

// AllTime returns the lifetime-damage board, served from the TTL cache when
// warm.
func (s *service) AllTime(ctx context.Context, limit int) ([]domain.AllTimeEntry, error) {
	if limit <= 0 {
		limit = DefaultAllTimeLimit
	}
	if limit > MaxAllTimeLimit {
		limit = MaxAllTimeLimit
	}

	if entries, ok := s.cache.Get(limit); ok {
		return entries, nil
	}

	entries, err := s.repo.TopByLifetimeDamage(ctx, limit)
	if err != nil {
		return nil, err
	}
	s.cache.Set(limit, entries)
	return entries, nil
}
