package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/osse101/ChinchiroBot_Go/internal/display"
	"github.com/osse101/ChinchiroBot_Go/internal/domain"
	"github.com/osse101/ChinchiroBot_Go/internal/round"
)

// Config wires up an interactive session
type Config struct {
	Bettor   Bettor
	Rounds   round.Service
	Terminal *display.Terminal
	Input    *bufio.Reader

	Bankroll int

	// AutoContinue skips the confirm and await prompts, for auto-betting
	// sessions with no human at the keyboard
	AutoContinue bool

	// ID overrides the generated session ID; tests use this for stable output
	ID string

	// Now overrides the wall clock for header timestamps
	Now func() time.Time
}

// Session runs the interactive bet-roll-resolve loop against the round
// service, tracking the bankroll until the player quits or goes broke.
type Session struct {
	bettor Bettor
	rounds round.Service
	term   *display.Terminal
	in     *bufio.Reader
	now    func() time.Time

	id       string
	bankroll int
	initial  int
	roundNum int
	running  bool
	auto     bool
}

// New creates a session from cfg
func New(cfg Config) *Session {
	id := cfg.ID
	if id == "" {
		id = newSessionID()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		bettor:   cfg.Bettor,
		rounds:   cfg.Rounds,
		term:     cfg.Terminal,
		in:       cfg.Input,
		now:      now,
		id:       id,
		bankroll: cfg.Bankroll,
		initial:  cfg.Bankroll,
		running:  true,
		auto:     cfg.AutoContinue,
	}
}

// newSessionID generates a short hex session tag
func newSessionID() string {
	return fmt.Sprintf("0x%04X", sessionIDMin+rand.Intn(sessionIDMax-sessionIDMin+1))
}

// Bankroll returns the current bankroll
func (s *Session) Bankroll() int { return s.bankroll }

// Rounds returns how many rounds have been played
func (s *Session) Rounds() int { return s.roundNum }

// Run plays rounds until the player quits, goes broke, or ctx is cancelled
func (s *Session) Run(ctx context.Context) error {
	t := s.term

	t.Log(fmt.Sprintf("[%s] %s v%s INITIALIZED", display.Timestamp(s.now()), ProgramName, ProgramVersion), "")
	t.Log("[INFO] SESSION_ID: "+s.id, "")
	t.Log("[INFO] INITIAL_BANKROLL: "+display.FormatAmount(s.bankroll), "")
	t.Log("[INFO] ENTER '0' AS BET_AMOUNT TO EXIT", "")

	var runErr error
	for s.running {
		if err := s.playRound(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				t.Prompt("\n")
				t.Log("[WARN] INTERRUPT_RECEIVED", "")
				t.Log(fmt.Sprintf("[%s] SESSION_ABORTED", display.Timestamp(s.now())), "")
				return err
			}
			runErr = err
			break
		}
	}

	t.Prompt("\n")
	t.Log(fmt.Sprintf("[%s] SESSION_COMPLETE", display.Timestamp(s.now())), "")
	t.Log(fmt.Sprintf("[SUMMARY] ROUNDS_PLAYED: %d", s.roundNum), "")
	t.Log("[SUMMARY] FINAL_BANKROLL: "+display.FormatAmount(s.bankroll), "")
	t.Log("[SUMMARY] NET_PNL: "+display.FormatSigned(s.bankroll-s.initial), "")

	return runErr
}

// playRound runs one bet-roll-resolve cycle
func (s *Session) playRound(ctx context.Context) error {
	t := s.term
	s.roundNum++

	t.Prompt("\n")
	t.Log(fmt.Sprintf("[%s] %s v%s | SESSION %s | ROUND %03d",
		display.Timestamp(s.now()), ProgramName, ProgramVersion, s.id, s.roundNum), "")
	s.printStatus(0)

	bet, err := s.getBet()
	if err != nil {
		// Input stream gone, wind the session down
		s.running = false
		return nil
	}
	if bet == 0 {
		if !s.confirmQuit() {
			t.Log("[INFO] BET_CANCELLED", "")
			return nil
		}
		t.Log("[INFO] SESSION_TERMINATED_BY_USER", "")
		s.running = false
		return nil
	}

	s.printStatus(bet)

	t.BeginRound()
	record, err := s.rounds.PlayRound(ctx, bet)
	if err != nil {
		return err
	}

	s.printOutcome(record.Outcome)
	s.bankroll += record.Outcome.Payout
	s.printStatus(0)

	if s.bankroll <= 0 {
		t.Log("[FATAL] BANKROLL_DEPLETED | SESSION_TERMINATED", "")
		s.running = false
		return nil
	}

	s.await()
	return nil
}

// getBet prompts until a bet within range arrives. Returns 0 for the quit
// signal and a non-nil error only when input is exhausted.
func (s *Session) getBet() (int, error) {
	t := s.term
	for {
		t.Pause(true)
		t.Prompt(fmt.Sprintf("[INPUT] BET_AMOUNT (1-%s) > ", display.FormatAmount(s.bankroll)))

		bet, err := s.bettor.NextBet(s.bankroll)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				t.Log("[ERROR] INVALID_AMOUNT: NOT_A_NUMBER", "")
				continue
			}
			return 0, err
		}
		if bet == 0 {
			return 0, nil
		}
		if bet < round.MinBet || bet > s.bankroll {
			t.Log("[ERROR] INVALID_AMOUNT: OUT_OF_RANGE", "")
			continue
		}
		return bet, nil
	}
}

// confirmQuit asks for Y/n confirmation after the quit signal. Anything but
// an explicit "n" confirms.
func (s *Session) confirmQuit() bool {
	if s.auto {
		return true
	}

	s.term.Prompt("[INPUT] PLACE_BET [Y/n] > ")
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return true
	}
	return strings.ToLower(strings.TrimSpace(line)) != "n"
}

// await holds the log until the player presses enter
func (s *Session) await() {
	if s.auto {
		return
	}

	s.term.Pause(true)
	s.term.Prompt("[AWAIT] > ")
	if _, err := s.in.ReadString('\n'); err != nil {
		s.running = false
	}
}

// printStatus shows the bankroll line, with the pot when a bet is riding
func (s *Session) printStatus(pot int) {
	right := ""
	if pot > 0 {
		right = "POT: " + display.FormatAmount(pot)
	}
	s.term.Log("[STATUS] BANKROLL: "+display.FormatAmount(s.bankroll), right)
}

// printOutcome renders the settlement line for a resolved round
func (s *Session) printOutcome(o domain.RoundOutcome) {
	t := s.term

	switch {
	case o.PlayerExhausted:
		t.Log("[RESULT] NO_VALID_COMBINATION", "DEBIT: "+display.FormatAmount(o.Payout))
	case o.PlayerResult != nil && o.PlayerResult.Combination == domain.CombinationHifumi:
		t.Log("[RESULT] "+display.FormatResult(*o.PlayerResult), "DEBIT: "+display.FormatAmount(o.Payout))
	case o.PlayerResult != nil && o.PlayerResult.IsAutoWin():
		t.Log("[RESULT] "+display.FormatResult(*o.PlayerResult), "CREDIT: "+display.FormatSigned(o.Payout))
	case o.Payout > 0:
		t.Log("[TRANSACTION] PLAYER_WIN", "CREDIT: "+display.FormatSigned(o.Payout))
	case o.Payout < 0:
		t.Log("[TRANSACTION] DEALER_WIN", "DEBIT: "+display.FormatAmount(o.Payout))
	default:
		t.Log("[TRANSACTION] DRAW", "NO_CHANGE")
	}
}
