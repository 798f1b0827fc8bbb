package sse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChinchiroBot_Go/internal/domain"
	"github.com/osse101/ChinchiroBot_Go/internal/event"
)

func registerAndWait(t *testing.T, hub *Hub, eventTypes []string) *Client {
	t.Helper()
	client := hub.Register(eventTypes)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, time.Millisecond)
	return client
}

func waitForEvent(t *testing.T, ch chan Event) Event {
	t.Helper()
	select {
	case evt := <-ch:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for SSE event")
		return Event{}
	}
}

func TestHub_BroadcastReachesClient(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := registerAndWait(t, hub, nil)

	hub.Broadcast(EventTypeRoundCompleted, map[string]int{"payout": 500})

	evt := waitForEvent(t, client.EventChannel)
	assert.Equal(t, EventTypeRoundCompleted, evt.Type)
	assert.NotEmpty(t, evt.ID)
}

func TestHub_EventFilterDropsUnwantedTypes(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := registerAndWait(t, hub, []string{EventTypeRoundCompleted})

	hub.Broadcast(EventTypeRoundFrame, nil)
	hub.Broadcast(EventTypeRoundCompleted, nil)

	evt := waitForEvent(t, client.EventChannel)
	assert.Equal(t, EventTypeRoundCompleted, evt.Type)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := registerAndWait(t, hub, nil)
	hub.Unregister(client.ID)

	select {
	case _, open := <-client.EventChannel:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestSubscriber_BridgesRoundCompleted(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := registerAndWait(t, hub, []string{EventTypeRoundCompleted})

	payload := domain.RoundCompletedPayload{RoundID: "r-1", Bet: 100, Payout: 500}
	err := bus.Publish(context.Background(), event.NewRoundCompletedEvent(payload))
	require.NoError(t, err)

	evt := waitForEvent(t, client.EventChannel)
	assert.Equal(t, EventTypeRoundCompleted, evt.Type)

	got, ok := evt.Payload.(domain.RoundCompletedPayload)
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestFrameSink_BroadcastsFrames(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := registerAndWait(t, hub, []string{EventTypeRoundFrame})

	sink := NewFrameSink(hub)
	sink.Frame(domain.RevealFrame{Side: domain.SidePlayer, Attempt: 1})

	evt := waitForEvent(t, client.EventChannel)
	assert.Equal(t, EventTypeRoundFrame, evt.Type)

	frame, ok := evt.Payload.(domain.RevealFrame)
	require.True(t, ok)
	assert.Equal(t, domain.SidePlayer, frame.Side)
}

func TestFormatSSEMessage(t *testing.T) {
	evt := Event{ID: "abc", Type: "round.completed", Timestamp: 1, Payload: nil}

	msg, err := FormatSSEMessage(evt)
	require.NoError(t, err)

	assert.Contains(t, string(msg), "id: abc\n")
	assert.Contains(t, string(msg), "event: round.completed\n")
	assert.Contains(t, string(msg), "data: ")
}
