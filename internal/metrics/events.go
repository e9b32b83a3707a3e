package metrics

import (
	"context"

	"github.com/tovald/bossraid/internal/event"
)

// EventMetricsCollector subscribes to raid events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all raid event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.BossState,
		event.BossRage,
		event.BossKilled,
		event.BossRespawn,
		event.RewardsDistributed,
		event.RewardPersistFailed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent counts every published event by type.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()
	return nil
}
