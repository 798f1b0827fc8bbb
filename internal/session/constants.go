package session

// Program identity printed on session banners
const (
	ProgramName    = "DICE_ANALYZER"
	ProgramVersion = "2.1.3"
)

// Default betting profile
const (
	DefaultPlayerName = "OPERATOR"

	// DefaultCPUAggression sits in the middle of the 0.0-1.0 range
	DefaultCPUAggression = 0.5

	// CPUMinBet keeps auto-bets from dribbling below a meaningful stake
	CPUMinBet = 100
)

// Session ID bounds, rendered as 0x1000-0xFFFF
const (
	sessionIDMin = 0x1000
	sessionIDMax = 0xFFFF
)
