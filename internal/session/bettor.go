package session

import (
	"bufio"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/osse101/ChinchiroBot_Go/internal/domain"
)

// Bettor decides the stake for each round. A bet of 0 signals the player
// wants to end the session.
type Bettor interface {
	Name() string
	NextBet(bankroll int) (int, error)
}

// HumanBettor reads bet amounts from an input stream. Accepts digits with
// optional comma grouping; "q", "quit" and "exit" map to the quit signal.
type HumanBettor struct {
	name string
	r    *bufio.Reader
}

// NewHumanBettor creates a bettor reading from r. The reader should be
// shared with the session so buffered input is not split between them.
func NewHumanBettor(name string, r *bufio.Reader) *HumanBettor {
	return &HumanBettor{name: name, r: r}
}

// Name returns the player name
func (h *HumanBettor) Name() string { return h.name }

// NextBet reads and parses one bet amount
func (h *HumanBettor) NextBet(_ int) (int, error) {
	raw, err := h.r.ReadString('\n')
	if err != nil && raw == "" {
		return 0, err
	}

	input := strings.TrimSpace(raw)
	switch strings.ToLower(input) {
	case "q", "quit", "exit":
		return 0, nil
	}

	n, err := strconv.Atoi(strings.ReplaceAll(input, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidInput, input)
	}
	return n, nil
}

// CPUBettor sizes bets automatically from the current bankroll.
// Aggression 0.0 bets around 1% of bankroll, 1.0 around 10%.
type CPUBettor struct {
	name       string
	aggression float64
	rng        *rand.Rand
}

// NewCPUBettor creates an auto-bettor. Aggression is clamped to [0,1].
func NewCPUBettor(name string, aggression float64, rng *rand.Rand) *CPUBettor {
	if aggression < 0 {
		aggression = 0
	}
	if aggression > 1 {
		aggression = 1
	}
	return &CPUBettor{name: name, aggression: aggression, rng: rng}
}

// Name returns the player name
func (c *CPUBettor) Name() string { return c.name }

// NextBet computes the next stake: a jittered percentage of bankroll,
// rounded down to a clean figure and clamped to what the player can cover.
func (c *CPUBettor) NextBet(bankroll int) (int, error) {
	basePct := 0.01 + c.aggression*0.09
	variance := 0.5 + c.rng.Float64()
	bet := int(float64(bankroll) * basePct * variance)

	switch {
	case bet >= 10000:
		bet = bet / 1000 * 1000
	case bet >= 1000:
		bet = bet / 100 * 100
	default:
		bet = bet / 10 * 10
		if bet < CPUMinBet {
			bet = CPUMinBet
		}
	}

	if bet > bankroll {
		bet = bankroll
	}
	return bet, nil
}
