package domain

import "time"

// SlotState describes a single die slot within a reveal frame
type SlotState string

const (
	SlotSpinning  SlotState = "spinning"  // showing a cosmetic random value
	SlotMasked    SlotState = "masked"    // placeholder, about to reveal
	SlotConfirmed SlotState = "confirmed" // final value locked in
)

// DieSlot is one die position in a reveal frame. Value is only meaningful
// for spinning (cosmetic) and confirmed (final) slots.
type DieSlot struct {
	State SlotState `json:"state"`
	Value int       `json:"value,omitempty"`
}

// RevealFrame is a display snapshot of the roll animation at one instant.
// Frames are produced in sequence and never leak an unconfirmed die's
// final value ahead of its confirmation.
type RevealFrame struct {
	Side    Side       `json:"side"`
	Attempt int        `json:"attempt"`
	Slots   [3]DieSlot `json:"slots"`
	At      time.Time  `json:"at"`
}
