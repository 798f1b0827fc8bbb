package round

// MaxAttempts is how many rolls a side gets before it is exhausted
const MaxAttempts = 3

// MinBet is the smallest stake a round accepts
const MinBet = 1

// HifumiPenaltyMultiplier doubles the stake on the guaranteed-loss hand.
// A dealer HIFUMI pays the player this flat multiple regardless of the
// player's own ME multiplier; the asymmetry is intentional.
const HifumiPenaltyMultiplier = 2

// Round state machine states
type state string

const (
	statePlayerRolling      state = "player_rolling"
	statePlayerAutoResolved state = "player_auto_resolved"
	statePlayerNeedsDealer  state = "player_needs_dealer"
	stateDealerRolling      state = "dealer_rolling"
	stateResolved           state = "resolved"
)

// Log operation identifiers
const (
	LogMsgPlayRoundCalled = "PlayRound called"
	LogMsgRoundResolved   = "Round resolved"
	LogMsgSideReroll      = "Invalid roll, rerolling"
	LogMsgSideExhausted   = "No valid roll after max attempts"
)
