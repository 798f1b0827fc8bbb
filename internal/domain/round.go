package domain

import (
	"time"

	"github.com/google/uuid"
)

// Side identifies which participant's rule fixed the round outcome
type Side string

const (
	SidePlayer Side = "player"
	SideDealer Side = "dealer"
	SideNone   Side = "none"
)

// RoundOutcome is the resolution of one player-vs-dealer round.
// Payout is signed: positive credits the player, negative debits them,
// zero returns the stake.
type RoundOutcome struct {
	Bet                    int             `json:"bet"`
	Payout                 int             `json:"payout"`
	DeterminingSide        Side            `json:"determining_side"`
	DeterminingCombination Combination     `json:"determining_combination,omitempty"`
	PlayerResult           *Classification `json:"player_result,omitempty"`
	DealerResult           *Classification `json:"dealer_result,omitempty"`
	PlayerExhausted        bool            `json:"player_exhausted"`
	DealerExhausted        bool            `json:"dealer_exhausted"`
	DealerRolled           bool            `json:"dealer_rolled"`
}

// IsWin reports whether the player came out ahead
func (o RoundOutcome) IsWin() bool { return o.Payout > 0 }

// IsDraw reports whether the stake was returned unchanged
func (o RoundOutcome) IsDraw() bool { return o.Payout == 0 }

// RoundRecord wraps a completed outcome with identity and timing for the
// recent-round lookup surface. Ephemeral; never persisted.
type RoundRecord struct {
	ID         uuid.UUID    `json:"id"`
	Outcome    RoundOutcome `json:"outcome"`
	StartedAt  time.Time    `json:"started_at"`
	ResolvedAt time.Time    `json:"resolved_at"`
}
