package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/ChinchiroBot_Go/internal/config"
	"github.com/osse101/ChinchiroBot_Go/internal/event"
)

// InitializeEventSystem creates and configures the event bus and resilient
// publisher, ensuring the dead-letter directory exists.
// Returns the event bus and resilient publisher.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	resilientPublisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     event.RetryMaxAttempts,
		RetryDelay:     EventDefaultRetryDelay,
		DeadLetterPath: cfg.DeadLetterPath,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", event.RetryMaxAttempts,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", cfg.DeadLetterPath)

	return eventBus, resilientPublisher, nil
}
