package reveal

import (
	"context"
	"time"

	"github.com/osse101/ChinchiroBot_Go/internal/dice"
	"github.com/osse101/ChinchiroBot_Go/internal/domain"
)

// Default phase timings, matching the tuned feel of the reveal animation
const (
	DefaultSpinDuration    = 1 * time.Second
	DefaultTickInterval    = 50 * time.Millisecond
	DefaultConfirmDelay    = 300 * time.Millisecond
	DefaultLastNormalDelay = 500 * time.Millisecond
	DefaultTenseDelayMin   = 1500 * time.Millisecond
	DefaultTenseDelayMax   = 2500 * time.Millisecond
)

// Config holds the phase durations for one reveal sequence
type Config struct {
	SpinDuration    time.Duration // phase 1: all three slots spinning
	TickInterval    time.Duration // frame emission cadence
	ConfirmDelay    time.Duration // pre-confirmation delay for dice 0 and 1
	LastNormalDelay time.Duration // pre-confirmation delay for die 2, calm case
	TenseDelayMin   time.Duration // lower bound of the suspense delay for die 2
	TenseDelayMax   time.Duration // upper bound of the suspense delay for die 2
}

// DefaultConfig returns the standard reveal timings
func DefaultConfig() Config {
	return Config{
		SpinDuration:    DefaultSpinDuration,
		TickInterval:    DefaultTickInterval,
		ConfirmDelay:    DefaultConfirmDelay,
		LastNormalDelay: DefaultLastNormalDelay,
		TenseDelayMin:   DefaultTenseDelayMin,
		TenseDelayMax:   DefaultTenseDelayMax,
	}
}

// Sink receives reveal frames in display order
type Sink interface {
	Frame(f domain.RevealFrame)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(f domain.RevealFrame)

func (fn SinkFunc) Frame(f domain.RevealFrame) { fn(f) }

// Sequencer turns a finalized roll into a timed sequence of reveal frames.
// The roll's values are only ever shown once their slot confirms; everything
// spinning is cosmetic noise from the injected RNG.
type Sequencer struct {
	cfg   Config
	clock Clock
	rng   func(int) int // Injectable for testing
}

// NewSequencer creates a sequencer. rng(n) must return a uniform value in [0,n).
func NewSequencer(cfg Config, clock Clock, rng func(int) int) *Sequencer {
	return &Sequencer{cfg: cfg, clock: clock, rng: rng}
}

// Run plays the full reveal animation for one roll attempt, pushing frames
// to sink. Blocks for the whole animation; returns early only when ctx is
// cancelled between ticks.
func (s *Sequencer) Run(ctx context.Context, side domain.Side, attempt int, final domain.Roll, finalAttempt bool, sink Sink) error {
	// Phase 1: all slots spinning
	if err := s.spin(ctx, side, attempt, nil, s.cfg.SpinDuration, sink); err != nil {
		return err
	}

	// Phase 2: progressive confirmation
	var confirmed []int
	for i := 0; i < 3; i++ {
		delay := s.cfg.ConfirmDelay
		if i == 2 {
			if dice.IsTense(confirmed, finalAttempt) {
				delay = s.tenseDelay()
			} else {
				delay = s.cfg.LastNormalDelay
			}
		}

		// The slot about to confirm keeps spinning through its delay
		if err := s.spin(ctx, side, attempt, confirmed, delay, sink); err != nil {
			return err
		}

		confirmed = append(confirmed, final[i])
		sink.Frame(s.confirmFrame(side, attempt, confirmed))
	}

	return nil
}

// Duration reports the worst-case wall time of one attempt, used for
// request deadline sizing on the HTTP surface.
func (s *Sequencer) Duration() time.Duration {
	return s.cfg.SpinDuration + 2*s.cfg.ConfirmDelay + s.cfg.TenseDelayMax
}

// spin emits frames at the tick interval until the delay elapses. Slots with
// confirmed values stay fixed; the rest show fresh cosmetic randoms.
func (s *Sequencer) spin(ctx context.Context, side domain.Side, attempt int, confirmed []int, delay time.Duration, sink Sink) error {
	deadline := s.clock.Now().Add(delay)
	for s.clock.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return err
		}

		var slots [3]domain.DieSlot
		for i := range slots {
			if i < len(confirmed) {
				slots[i] = domain.DieSlot{State: domain.SlotConfirmed, Value: confirmed[i]}
			} else {
				slots[i] = domain.DieSlot{State: domain.SlotSpinning, Value: s.rng(domain.DieMax) + 1}
			}
		}

		sink.Frame(domain.RevealFrame{
			Side:    side,
			Attempt: attempt,
			Slots:   slots,
			At:      s.clock.Now(),
		})

		s.clock.Sleep(s.cfg.TickInterval)
	}
	return nil
}

// confirmFrame shows the newly confirmed state: locked values plus masked
// placeholders for slots still waiting to reveal.
func (s *Sequencer) confirmFrame(side domain.Side, attempt int, confirmed []int) domain.RevealFrame {
	var slots [3]domain.DieSlot
	for i := range slots {
		if i < len(confirmed) {
			slots[i] = domain.DieSlot{State: domain.SlotConfirmed, Value: confirmed[i]}
		} else {
			slots[i] = domain.DieSlot{State: domain.SlotMasked}
		}
	}

	return domain.RevealFrame{
		Side:    side,
		Attempt: attempt,
		Slots:   slots,
		At:      s.clock.Now(),
	}
}

// tenseDelay samples a uniform duration from the suspense range
func (s *Sequencer) tenseDelay() time.Duration {
	span := int(s.cfg.TenseDelayMax - s.cfg.TenseDelayMin)
	if span <= 0 {
		return s.cfg.TenseDelayMin
	}
	return s.cfg.TenseDelayMin + time.Duration(s.rng(span))
}
