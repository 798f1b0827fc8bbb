package reveal

import (
	"context"
	"time"

	"github.com/osse101/ChinchiroBot_Go/internal/domain"
	"github.com/osse101/ChinchiroBot_Go/internal/metrics"
)

// Animator binds a Sequencer to a frame sink and times each attempt.
// It satisfies the round service's per-attempt animation hook.
type Animator struct {
	seq  *Sequencer
	sink Sink
}

// NewAnimator creates an animator pushing frames to sink
func NewAnimator(seq *Sequencer, sink Sink) *Animator {
	return &Animator{seq: seq, sink: sink}
}

// Animate plays the reveal sequence for one attempt, blocking until done
func (a *Animator) Animate(ctx context.Context, side domain.Side, attempt int, roll domain.Roll, finalAttempt bool) error {
	start := time.Now()
	err := a.seq.Run(ctx, side, attempt, roll, finalAttempt, a.sink)
	metrics.RevealDuration.WithLabelValues(string(side)).Observe(time.Since(start).Seconds())
	return err
}
