package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/ChinchiroBot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Round event types
const (
	RoundCompleted Type = Type(domain.EventRoundCompleted)
	RoundReroll    Type = Type(domain.EventRoundReroll)
	SideExhausted  Type = Type(domain.EventSideExhausted)
)

// NewRoundCompletedEvent creates a round completed event with a typed payload
func NewRoundCompletedEvent(payload domain.RoundCompletedPayload) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundCompleted,
		Payload: payload,
	}
}

// NewRoundRerollEvent creates a reroll event with a typed payload
func NewRoundRerollEvent(payload domain.RoundRerollPayload) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundReroll,
		Payload: payload,
	}
}

// NewSideExhaustedEvent creates a side exhausted event with a typed payload
func NewSideExhaustedEvent(payload domain.SideExhaustedPayload) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SideExhausted,
		Payload: payload,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
