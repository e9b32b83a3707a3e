package repository

import (
	"context"

	"github.com/tovald/bossraid/internal/domain"
)

// Aggregates defines the interface for durable per-player lifetime stats
type Aggregates interface {
	// IncrementAggregate applies a one-shot delta, creating the row on first
	// contact with a player.
	IncrementAggregate(ctx context.Context, delta domain.AggregateDelta) error

	// TopByLifetimeDamage returns the all-time leaderboard page.
	TopByLifetimeDamage(ctx context.Context, limit int) ([]domain.AllTimeEntry, error)
}
