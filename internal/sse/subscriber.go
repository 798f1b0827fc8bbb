package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/ChinchiroBot_Go/internal/domain"
	"github.com/osse101/ChinchiroBot_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
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

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.RoundCompleted, s.handleRoundCompleted)
	s.bus.Subscribe(event.RoundReroll, s.handleRoundReroll)
	s.bus.Subscribe(event.SideExhausted, s.handleSideExhausted)

	slog.Info(LogMsgSubscribed,
		"types", []string{
			string(event.RoundCompleted),
			string(event.RoundReroll),
			string(event.SideExhausted),
		})
}

// handleRoundCompleted broadcasts round resolution to SSE clients
func (s *Subscriber) handleRoundCompleted(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.RoundCompletedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgDecodeError, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRoundCompleted, payload)

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeRoundCompleted,
		"round_id", payload.RoundID,
		"payout", payload.Payout)

	return nil
}

// handleRoundReroll broadcasts MENASHI rerolls to SSE clients
func (s *Subscriber) handleRoundReroll(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.RoundRerollPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgDecodeError, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRoundReroll, payload)

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeRoundReroll,
		"round_id", payload.RoundID,
		"side", payload.Side,
		"attempt", payload.Attempt)

	return nil
}

// handleSideExhausted broadcasts attempt exhaustion to SSE clients
func (s *Subscriber) handleSideExhausted(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.SideExhaustedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgDecodeError, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeSideExhausted, payload)

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeSideExhausted,
		"round_id", payload.RoundID,
		"side", payload.Side)

	return nil
}

// FrameSink feeds reveal animation frames straight into the hub so
// spectators watch the same masked sequence the player sees.
type FrameSink struct {
	hub *Hub
}

// NewFrameSink creates a reveal sink backed by the hub
func NewFrameSink(hub *Hub) *FrameSink {
	return &FrameSink{hub: hub}
}

// Frame broadcasts a single reveal frame
func (fs *FrameSink) Frame(f domain.RevealFrame) {
	fs.hub.Broadcast(EventTypeRoundFrame, f)
}
