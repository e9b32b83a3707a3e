package sse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"

	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/event"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.ClientCount() == want
	}, time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := startHub(t)

	c1 := hub.Register(nil)
	c2 := hub.Register(nil)
	waitForClients(t, hub, 2)

	hub.Broadcast(EventTypeBossState, map[string]interface{}{"hp": 500})

	for _, c := range []*Client{c1, c2} {
		select {
		case evt := <-c.EventChannel:
			assert.Equal(t, EventTypeBossState, evt.Type)
		case <-time.After(time.Second):
			t.Fatal("Client did not receive broadcast")
		}
	}
}

func TestHub_FilterLimitsEventTypes(t *testing.T) {
	hub := startHub(t)

	filtered := hub.Register([]string{EventTypeBossKilled})
	waitForClients(t, hub, 1)

	hub.Broadcast(EventTypeBossState, nil)
	hub.Broadcast(EventTypeBossKilled, nil)

	select {
	case evt := <-filtered.EventChannel:
		assert.Equal(t, EventTypeBossKilled, evt.Type)
	case <-time.After(time.Second):
		t.Fatal("Filtered client did not receive matching event")
	}

	select {
	case evt := <-filtered.EventChannel:
		t.Fatalf("Unexpected extra event %q", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Unregister(client.ID)
	waitForClients(t, hub, 0)

	_, open := <-client.EventChannel
	assert.False(t, open)
}

func TestFormatSSEMessage(t *testing.T) {
	evt := Event{
		ID:        uuid.New().String(),
		Type:      EventTypeBossRage,
		Timestamp: time.Now().Unix(),
		Payload:   map[string]interface{}{"phase": 2},
	}

	msg, err := FormatSSEMessage(evt)
	require.NoError(t, err)

	text := string(msg)
	assert.True(t, strings.HasPrefix(text, "id: "+evt.ID+"\n"))
	assert.Contains(t, text, "event: "+EventTypeBossRage+"\n")
	assert.Contains(t, text, "data: ")
	assert.True(t, strings.HasSuffix(text, "\n\n"))
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	encounterID := uuid.New()
	def := domain.BossDefinition{ID: "grove-tyrant", Name: "Grove Tyrant", MaxHP: 1000}
	require.NoError(t, bus.Publish(context.Background(), event.NewBossStateEvent(encounterID, def, 700, 1, domain.EncounterAlive, 3)))

	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, EventTypeBossState, evt.Type)
		payload, ok := evt.Payload.(event.BossStatePayloadV1)
		require.True(t, ok)
		assert.Equal(t, int64(700), payload.HP)
	case <-time.After(time.Second):
		t.Fatal("Bus event was not forwarded to the hub")
	}
}
