package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeBossState is the periodic and on-change boss snapshot
	EventTypeBossState = "boss.state"

	// EventTypeBossRage is sent when the boss escalates to a higher rage phase
	EventTypeBossRage = "boss.rage"

	// EventTypeBossKilled is sent exactly once per boss death
	EventTypeBossKilled = "boss.killed"

	// EventTypeBossRespawn is sent when the next boss in the rotation spawns
	EventTypeBossRespawn = "boss.respawn"

	// EventTypeRewardsDistributed summarizes reward creation after a kill
	EventTypeRewardsDistributed = "rewards.distributed"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgWriteError         = "Failed to write SSE event"
)
