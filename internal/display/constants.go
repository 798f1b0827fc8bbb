package display

import "time"

// Terminal layout
const (
	// MinWidth is the narrowest layout the renderer will produce
	MinWidth = 60

	// DefaultWidth is used when the output is not a terminal
	DefaultWidth = 80
)

// Output markers
const (
	RollPrefix = "[PROC] ROLLING... "
	MaskedSlot = "##"

	PlayerSequenceHeader = "[PROC] PLAYER_ROLL_SEQUENCE"
	DealerSequenceHeader = "[PROC] DEALER_ROLL_SEQUENCE"
)

// Pacing delays for the log-feed feel. Every printed line waits a small
// jittered beat so the output reads like a live process log.
const (
	DelayBase      = 80 * time.Millisecond
	DelayJitterMin = -30 * time.Millisecond
	DelayJitterMax = 50 * time.Millisecond
	DelayHeavyMin  = 200 * time.Millisecond
	DelayHeavyMax  = 400 * time.Millisecond
	DelayFloor     = 10 * time.Millisecond
)

// TimestampLayout formats session timestamps
const TimestampLayout = "2006-01-02 15:04:05"
