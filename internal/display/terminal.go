package display

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/osse101/ChinchiroBot_Go/internal/dice"
	"github.com/osse101/ChinchiroBot_Go/internal/domain"
	"github.com/osse101/ChinchiroBot_Go/internal/round"
)

// Terminal renders the session as a terminal log feed. It doubles as the
// reveal frame sink: animation frames are drawn in place with carriage
// returns, and per-attempt result lines are printed as slots confirm.
//
// Not safe for concurrent use; the session drives it from one goroutine.
type Terminal struct {
	w     io.Writer
	width func() int
	sleep func(time.Duration)
	rng   func(int) int

	lastSide    domain.Side
	lastAttempt int
	midLine     bool
	lastResult  *domain.Classification
}

// NewTerminal creates a terminal renderer with live pacing delays
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		w:     w,
		width: func() int { return widthOf(w) },
		sleep: time.Sleep,
		rng:   rand.Intn,
	}
}

// NewTerminalWithOptions creates a renderer with injected width, sleep and
// rng functions. Used by tests to run without pacing or a real TTY.
func NewTerminalWithOptions(w io.Writer, width func() int, sleep func(time.Duration), rng func(int) int) *Terminal {
	return &Terminal{w: w, width: width, sleep: sleep, rng: rng}
}

// widthOf reports the terminal width of w, clamped to MinWidth
func widthOf(w io.Writer) int {
	width := DefaultWidth
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = cols
		}
	}
	if width < MinWidth {
		width = MinWidth
	}
	return width
}

// Width returns the current layout width
func (t *Terminal) Width() int {
	w := t.width()
	if w < MinWidth {
		return MinWidth
	}
	return w
}

// Timestamp formats the current time for header lines
func Timestamp(at time.Time) string {
	return at.Format(TimestampLayout)
}

// Line formats a log line with optional right-aligned content
func (t *Terminal) Line(left, right string) string {
	if right == "" {
		return left
	}
	padding := t.Width() - len(left) - len(right)
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + right
}

// Log prints a line after a short jittered beat
func (t *Terminal) Log(left, right string) {
	t.pause(false)
	fmt.Fprintln(t.w, t.Line(left, right))
}

// LogHeavy prints a line after a longer beat, for lines that should feel
// like the process is working
func (t *Terminal) LogHeavy(left, right string) {
	t.pause(true)
	fmt.Fprintln(t.w, t.Line(left, right))
}

// Prompt writes an input prompt without a trailing newline
func (t *Terminal) Prompt(text string) {
	fmt.Fprint(t.w, text)
}

// Pause waits the standard log beat without printing anything. Used ahead
// of interactive prompts.
func (t *Terminal) Pause(heavy bool) {
	t.pause(heavy)
}

// pause sleeps a jittered beat so lines print at a log-feed cadence
func (t *Terminal) pause(heavy bool) {
	base := DelayBase
	if heavy {
		span := int(DelayHeavyMax - DelayHeavyMin)
		base = DelayHeavyMin + time.Duration(t.rng(span))
	}
	jitter := DelayJitterMin + time.Duration(t.rng(int(DelayJitterMax-DelayJitterMin)))
	d := base + jitter
	if d < DelayFloor {
		d = DelayFloor
	}
	t.sleep(d)
}

// BeginRound resets the reveal rendering state for a fresh round
func (t *Terminal) BeginRound() {
	t.lastSide = ""
	t.lastAttempt = 0
	t.lastResult = nil
}

// Frame renders one reveal frame in place. When a frame fully confirms,
// the attempt's result line is printed: rerolls for MENASHI, the dealer's
// hand, or a held player result flushed as AWAIT_DEALER once the dealer
// sequence starts.
func (t *Terminal) Frame(f domain.RevealFrame) {
	if f.Side != t.lastSide || f.Attempt != t.lastAttempt {
		t.endLine()
		if f.Side != t.lastSide {
			t.beginSide(f.Side)
		}
		t.lastSide = f.Side
		t.lastAttempt = f.Attempt
	}

	var cells [3]string
	confirmed := 0
	for i, slot := range f.Slots {
		if slot.State == domain.SlotMasked {
			cells[i] = MaskedSlot
			continue
		}
		cells[i] = fmt.Sprintf("%02d", slot.Value)
		if slot.State == domain.SlotConfirmed {
			confirmed++
		}
	}

	line := fmt.Sprintf("%s[%s %s %s]", RollPrefix, cells[0], cells[1], cells[2])
	fmt.Fprintf(t.w, "\r%-*s", t.Width(), line)
	t.midLine = true

	if confirmed == 3 {
		t.endLine()
		t.attemptDone(f)
	}
}

// beginSide prints the roll sequence header, flushing a pending player
// result when the dealer takes over
func (t *Terminal) beginSide(side domain.Side) {
	if side == domain.SideDealer && t.lastResult != nil {
		t.Log("[RESULT] "+FormatResult(*t.lastResult), "AWAIT_DEALER")
	}

	header := PlayerSequenceHeader
	if side == domain.SideDealer {
		header = DealerSequenceHeader
	}
	t.LogHeavy(header, "")
}

// attemptDone classifies the fully confirmed frame and prints the
// per-attempt outcome line
func (t *Terminal) attemptDone(f domain.RevealFrame) {
	// Slots confirm in sorted roll order
	roll := domain.Roll{f.Slots[0].Value, f.Slots[1].Value, f.Slots[2].Value}
	c := dice.Classify(roll)

	if c.IsValid() {
		if f.Side == domain.SideDealer {
			t.Log("[DEALER] "+FormatResult(c), "")
		} else {
			// Held until the dealer starts or the session prints the payout
			t.lastResult = &c
		}
		return
	}

	switch {
	case f.Attempt < round.MaxAttempts && f.Side == domain.SideDealer:
		t.Log(fmt.Sprintf("[DEALER] %s | REROLL %d/%d", FormatResult(c), f.Attempt+1, round.MaxAttempts), "")
	case f.Attempt < round.MaxAttempts:
		t.Log(fmt.Sprintf("[RESULT] %s | REROLL %d/%d", FormatResult(c), f.Attempt+1, round.MaxAttempts), "")
	case f.Side == domain.SidePlayer:
		t.Log(fmt.Sprintf("[RESULT] %s | NO_VALID_ROLL", FormatResult(c)), "")
	}
}

// endLine terminates an in-place animation line
func (t *Terminal) endLine() {
	if t.midLine {
		fmt.Fprintln(t.w)
		t.midLine = false
	}
}
