package domain

// EventType identifies domain events published on the event bus
type EventType string

const (
	EventRoundCompleted EventType = "round.completed"
	EventRoundReroll    EventType = "round.reroll"
	EventSideExhausted  EventType = "round.side_exhausted"
)

// RoundCompletedPayload is the event payload for round.completed events
type RoundCompletedPayload struct {
	RoundID                string      `json:"round_id"`
	Bet                    int         `json:"bet"`
	Payout                 int         `json:"payout"`
	DeterminingSide        Side        `json:"determining_side"`
	DeterminingCombination Combination `json:"determining_combination,omitempty"`
	DealerRolled           bool        `json:"dealer_rolled"`
	Timestamp              int64       `json:"timestamp"`
}

// RoundRerollPayload is the event payload for round.reroll events
type RoundRerollPayload struct {
	RoundID   string `json:"round_id"`
	Side      Side   `json:"side"`
	Attempt   int    `json:"attempt"`
	Roll      string `json:"roll"`
	Timestamp int64  `json:"timestamp"`
}

// SideExhaustedPayload is the event payload for round.side_exhausted events
type SideExhaustedPayload struct {
	RoundID   string `json:"round_id"`
	Side      Side   `json:"side"`
	Attempts  int    `json:"attempts"`
	Timestamp int64  `json:"timestamp"`
}
