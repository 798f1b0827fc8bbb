package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel.
	// A full round at 50ms ticks produces well over 50 frames, so spectator
	// channels get extra headroom before frames start dropping.
	ClientEventBuffer = 128

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
	// EventTypeRoundFrame carries a single reveal animation frame
	EventTypeRoundFrame = "round.frame"

	// EventTypeRoundCompleted is sent when a round resolves with a payout
	EventTypeRoundCompleted = "round.completed"

	// EventTypeRoundReroll is sent when a side rolls MENASHI and must go again
	EventTypeRoundReroll = "round.reroll"

	// EventTypeSideExhausted is sent when a side burns all attempts without a result
	EventTypeSideExhausted = "round.side_exhausted"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgDecodeError        = "Failed to decode event payload"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
)
