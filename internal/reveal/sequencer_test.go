package reveal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChinchiroBot_Go/internal/domain"
)

// fakeClock advances instantly on Sleep so sequences replay without waiting
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

// frameRecorder collects emitted frames
type frameRecorder struct {
	frames []domain.RevealFrame
}

func (r *frameRecorder) Frame(f domain.RevealFrame) {
	r.frames = append(r.frames, f)
}

// fixedRNG returns a constant for die sampling and half the span for delays
func fixedRNG(n int) int {
	if n == domain.DieMax {
		return 2
	}
	return n / 2
}

func testConfig() Config {
	return DefaultConfig()
}

func runSequence(t *testing.T, roll domain.Roll, finalAttempt bool) (*frameRecorder, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	rec := &frameRecorder{}
	seq := NewSequencer(testConfig(), clock, fixedRNG)

	err := seq.Run(context.Background(), domain.SidePlayer, 1, roll, finalAttempt, rec)
	require.NoError(t, err)
	return rec, clock
}

func TestSequencer_NeverLeaksUnconfirmedValues(t *testing.T) {
	final := domain.Roll{2, 5, 5}
	rec, _ := runSequence(t, final, false)
	require.NotEmpty(t, rec.frames)

	confirmedSeen := 0
	for _, f := range rec.frames {
		// confirmed slots form a growing prefix showing the true values
		n := 0
		for i, slot := range f.Slots {
			if slot.State != domain.SlotConfirmed {
				break
			}
			n = i + 1
			assert.Equal(t, final[i], slot.Value)
		}
		for i := n; i < 3; i++ {
			assert.NotEqual(t, domain.SlotConfirmed, f.Slots[i].State,
				"slot %d confirmed out of order", i)
		}

		assert.GreaterOrEqual(t, n, confirmedSeen, "confirmation never regresses")
		confirmedSeen = n
	}
	assert.Equal(t, 3, confirmedSeen)

	// final frame has everything confirmed at the true values
	last := rec.frames[len(rec.frames)-1]
	for i, slot := range last.Slots {
		assert.Equal(t, domain.SlotConfirmed, slot.State)
		assert.Equal(t, domain.Roll{2, 5, 5}[i], slot.Value)
	}
}

func TestSequencer_ConfirmFramesMaskPendingSlots(t *testing.T) {
	rec, _ := runSequence(t, domain.Roll{2, 5, 5}, false)

	// First confirmation frame: slot 0 confirmed, slots 1 and 2 masked
	var firstConfirm *domain.RevealFrame
	for i := range rec.frames {
		if rec.frames[i].Slots[0].State == domain.SlotConfirmed {
			firstConfirm = &rec.frames[i]
			break
		}
	}
	require.NotNil(t, firstConfirm)
	assert.Equal(t, 2, firstConfirm.Slots[0].Value)
	assert.Equal(t, domain.SlotMasked, firstConfirm.Slots[1].State)
	assert.Equal(t, domain.SlotMasked, firstConfirm.Slots[2].State)
}

func TestSequencer_CalmLastDieUsesNormalDelay(t *testing.T) {
	// 2 and 5 confirmed first: split low/high, not tense
	_, clock := runSequence(t, domain.Roll{2, 5, 5}, false)

	want := DefaultSpinDuration + 2*DefaultConfirmDelay + DefaultLastNormalDelay
	elapsed := clock.Now().Sub(newFakeClock().Now())
	assert.Equal(t, want, elapsed)
}

func TestSequencer_TenseLastDieDelayInRange(t *testing.T) {
	// 4 and 5 confirmed first: both high, potential shigoro
	rec, clock := runSequence(t, domain.Roll{4, 5, 6}, false)

	elapsed := clock.Now().Sub(newFakeClock().Now())
	lastDelay := elapsed - DefaultSpinDuration - 2*DefaultConfirmDelay
	assert.GreaterOrEqual(t, lastDelay, DefaultTenseDelayMin)
	assert.LessOrEqual(t, lastDelay, DefaultTenseDelayMax)
	assert.NotEqual(t, DefaultLastNormalDelay, lastDelay)
	require.NotEmpty(t, rec.frames)
}

func TestSequencer_FinalAttemptAlwaysTense(t *testing.T) {
	// 1 and 4 confirmed first would normally be calm
	_, clock := runSequence(t, domain.Roll{1, 4, 6}, true)

	elapsed := clock.Now().Sub(newFakeClock().Now())
	lastDelay := elapsed - DefaultSpinDuration - 2*DefaultConfirmDelay
	assert.GreaterOrEqual(t, lastDelay, DefaultTenseDelayMin)
	assert.LessOrEqual(t, lastDelay, DefaultTenseDelayMax)
}

func TestSequencer_SpinPhaseFrameCadence(t *testing.T) {
	rec, _ := runSequence(t, domain.Roll{2, 5, 5}, false)

	// Phase 1 emits spin frames at the tick interval for the whole duration
	spinAll := 0
	for _, f := range rec.frames {
		allSpinning := true
		for _, slot := range f.Slots {
			if slot.State != domain.SlotSpinning {
				allSpinning = false
			}
		}
		if allSpinning {
			spinAll++
		}
	}
	assert.Equal(t, int(DefaultSpinDuration/DefaultTickInterval), spinAll)
}

func TestSequencer_CancelledContextStopsSequence(t *testing.T) {
	clock := newFakeClock()
	rec := &frameRecorder{}
	seq := NewSequencer(testConfig(), clock, fixedRNG)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := seq.Run(ctx, domain.SidePlayer, 1, domain.Roll{2, 5, 5}, false, rec)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.frames)
}
