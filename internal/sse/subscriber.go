package sse

import (
	"context"
	"log/slog"

	"github.com/tovald/bossraid/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub. Raid event
// payloads are typed structs built for the wire, so they pass through
// untouched.
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all client-facing event types
func (s *Subscriber) Subscribe() {
	forwarded := []event.Type{
		event.BossState,
		event.BossRage,
		event.BossKilled,
		event.BossRespawn,
		event.RewardsDistributed,
	}
	for _, t := range forwarded {
		s.bus.Subscribe(t, s.handleEvent)
	}

	slog.Info("SSE subscriber registered for event types", "types", forwarded)
}

// handleEvent forwards one bus event to connected clients.
func (s *Subscriber) handleEvent(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)

	slog.Debug(LogMsgEventBroadcast,
		"event_type", evt.Type,
		"clients", s.hub.ClientCount())

	return nil
}
