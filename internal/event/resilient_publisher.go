package event

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/osse101/ChinchiroBot_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead letter queuing
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	mu     sync.Mutex // Protects file writes
	wg     sync.WaitGroup
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish attempts to publish an event. If it fails, it initiates a background
// retry loop and returns nil immediately; the caller is decoupled from the
// retry mechanism.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(event)

	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Wait blocks until all in-flight retry loops finish. Used at shutdown.
func (p *ResilientPublisher) Wait() {
	p.wg.Wait()
}

func (p *ResilientPublisher) retryLoop(event Event) {
	defer p.wg.Done()

	// Detached context: the originating request may already be gone
	ctx := context.Background()

	var lastErr error
	for i := 1; i <= p.config.MaxRetries; i++ {
		time.Sleep(p.config.RetryDelay * time.Duration(i)) // Linear backoff

		lastErr = p.inner.Publish(ctx, event)
		if lastErr == nil {
			logger.Info(LogMsgEventRetrySucceeded,
				"event_type", event.Type,
				"attempt", i)
			return
		}

		logger.Warn(LogMsgEventRetryFailed,
			"event_type", event.Type,
			"attempt", i,
			"error", lastErr)
	}

	p.writeToDeadLetter(event, lastErr)
}

// DeadLetterEntry represents an event that failed to publish after all retries
type DeadLetterEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Event     Event     `json:"event"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
}

func (p *ResilientPublisher) writeToDeadLetter(event Event, lastErr error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		logger.Error("Failed to open dead letter file", "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	entry := DeadLetterEntry{
		Timestamp: time.Now(),
		Event:     event,
		Attempts:  p.config.MaxRetries,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		logger.Error("Failed to write to dead letter file", "error", err)
	} else {
		logger.Info(LogMsgDeadLetterWritten, "event_type", event.Type)
	}
}
