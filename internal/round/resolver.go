package round

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ChinchiroBot_Go/internal/dice"
	"github.com/osse101/ChinchiroBot_Go/internal/domain"
	"github.com/osse101/ChinchiroBot_Go/internal/event"
	"github.com/osse101/ChinchiroBot_Go/internal/logger"
	"github.com/osse101/ChinchiroBot_Go/internal/metrics"
)

// Roller produces finalized rolls for a side's attempts
type Roller interface {
	Roll() (domain.Roll, error)
}

// Animator plays the reveal sequence for one attempt. A nil animator skips
// animation entirely (headless resolution).
type Animator interface {
	Animate(ctx context.Context, side domain.Side, attempt int, roll domain.Roll, finalAttempt bool) error
}

// Service defines the interface for round operations
type Service interface {
	PlayRound(ctx context.Context, bet int) (*domain.RoundRecord, error)
}

type service struct {
	roller    Roller
	animator  Animator
	publisher *event.ResilientPublisher
}

// NewService creates a new round service. animator and publisher may be nil.
func NewService(roller Roller, animator Animator, publisher *event.ResilientPublisher) Service {
	return &service{
		roller:    roller,
		animator:  animator,
		publisher: publisher,
	}
}

// sideState tracks one side's progress through its up-to-three attempts
type sideState struct {
	attempts int
	invalid  []domain.Classification
	final    *domain.Classification
}

func (st sideState) exhausted() bool { return st.final == nil }

// PlayRound runs one full player-vs-dealer round for the given stake and
// returns the resolved record. The dealer only rolls when the player lands
// a ME hand; auto-resolving player combinations short-circuit.
func (s *service) PlayRound(ctx context.Context, bet int) (*domain.RoundRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgPlayRoundCalled, "bet", bet)

	if bet < MinBet {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidBet, bet)
	}

	record := &domain.RoundRecord{
		ID:        uuid.New(),
		StartedAt: time.Now(),
	}

	st := statePlayerRolling
	player, err := s.rollSide(ctx, record.ID, domain.SidePlayer)
	if err != nil {
		return nil, err
	}

	var dealer sideState
	dealerRolled := false

	switch {
	case player.exhausted():
		st = stateResolved
	case player.final.Combination == domain.CombinationHifumi, player.final.IsAutoWin():
		st = statePlayerAutoResolved
	default:
		st = statePlayerNeedsDealer
	}

	if st == statePlayerNeedsDealer {
		st = stateDealerRolling
		dealerRolled = true
		dealer, err = s.rollSide(ctx, record.ID, domain.SideDealer)
		if err != nil {
			return nil, err
		}
	}

	outcome := resolve(bet, player, dealer, dealerRolled)
	st = stateResolved
	record.Outcome = outcome
	record.ResolvedAt = time.Now()

	metrics.RoundsPlayed.WithLabelValues(
		string(outcome.DeterminingSide),
		string(outcome.DeterminingCombination),
	).Inc()
	recordPayoutMetrics(outcome)

	log.Info(LogMsgRoundResolved,
		"round_id", record.ID,
		"state", string(st),
		"payout", outcome.Payout,
		"determining_side", outcome.DeterminingSide,
		"determining_combination", outcome.DeterminingCombination)

	s.publishCompleted(ctx, record)

	return record, nil
}

// rollSide runs the per-side sub-protocol: up to MaxAttempts rolls, each
// animated, rerolling on MENASHI. An exhausted side comes back with a nil
// final classification.
func (s *service) rollSide(ctx context.Context, roundID uuid.UUID, side domain.Side) (sideState, error) {
	log := logger.FromContext(ctx)
	var st sideState

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		st.attempts = attempt
		finalAttempt := attempt == MaxAttempts

		roll, err := s.roller.Roll()
		if err != nil {
			return st, fmt.Errorf("failed to roll for %s: %w", side, err)
		}

		if s.animator != nil {
			if err := s.animator.Animate(ctx, side, attempt, roll, finalAttempt); err != nil {
				return st, fmt.Errorf("reveal aborted for %s: %w", side, err)
			}
		}

		c := dice.Classify(roll)
		if c.IsValid() {
			st.final = &c
			return st, nil
		}

		st.invalid = append(st.invalid, c)
		metrics.Rerolls.WithLabelValues(string(side)).Inc()

		if !finalAttempt {
			log.Debug(LogMsgSideReroll, "side", side, "attempt", attempt, "roll", roll.String())
			s.publishReroll(ctx, roundID, side, attempt, roll)
		}
	}

	log.Info(LogMsgSideExhausted, "side", side, "round_id", roundID)
	s.publishExhausted(ctx, roundID, side)
	return st, nil
}

// resolve computes the signed payout from two finalized side states.
// The rule order mirrors the official ranking and must not be reordered.
func resolve(bet int, player, dealer sideState, dealerRolled bool) domain.RoundOutcome {
	outcome := domain.RoundOutcome{
		Bet:          bet,
		DealerRolled: dealerRolled,
	}
	if player.final != nil {
		outcome.PlayerResult = player.final
	}
	if dealer.final != nil {
		outcome.DealerResult = dealer.final
	}

	// Player never produced a valid roll: flat loss, dealer not consulted
	if player.exhausted() {
		outcome.PlayerExhausted = true
		outcome.Payout = -bet
		outcome.DeterminingSide = domain.SidePlayer
		return outcome
	}

	p := *player.final

	// Player auto-lose
	if p.Combination == domain.CombinationHifumi {
		outcome.Payout = -bet * HifumiPenaltyMultiplier
		outcome.DeterminingSide = domain.SidePlayer
		outcome.DeterminingCombination = p.Combination
		return outcome
	}

	// Player auto-win
	if p.IsAutoWin() {
		outcome.Payout = bet * p.Multiplier
		outcome.DeterminingSide = domain.SidePlayer
		outcome.DeterminingCombination = p.Combination
		return outcome
	}

	// Dealer exhausted: player wins by forfeit at the ME multiplier
	if dealer.exhausted() {
		outcome.DealerExhausted = true
		outcome.Payout = bet * p.Multiplier
		outcome.DeterminingSide = domain.SideDealer
		return outcome
	}

	d := *dealer.final

	// Dealer auto-lose pays the player a flat double stake
	if d.Combination == domain.CombinationHifumi {
		outcome.Payout = bet * HifumiPenaltyMultiplier
		outcome.DeterminingSide = domain.SideDealer
		outcome.DeterminingCombination = d.Combination
		return outcome
	}

	// Dealer auto-win
	if d.IsAutoWin() {
		outcome.Payout = -bet * d.Multiplier
		outcome.DeterminingSide = domain.SideDealer
		outcome.DeterminingCombination = d.Combination
		return outcome
	}

	// Both sides hold ME: compare the odd die
	switch p.Beats(d) {
	case 1:
		outcome.Payout = bet * p.Multiplier
		outcome.DeterminingSide = domain.SidePlayer
		outcome.DeterminingCombination = p.Combination
	case -1:
		outcome.Payout = -bet * d.Multiplier
		outcome.DeterminingSide = domain.SideDealer
		outcome.DeterminingCombination = d.Combination
	default:
		outcome.Payout = 0
		outcome.DeterminingSide = domain.SideNone
		outcome.DeterminingCombination = p.Combination
	}
	return outcome
}

func recordPayoutMetrics(o domain.RoundOutcome) {
	switch {
	case o.Payout > 0:
		metrics.PayoutTotal.WithLabelValues(metrics.DirectionCredit).Add(float64(o.Payout))
	case o.Payout < 0:
		metrics.PayoutTotal.WithLabelValues(metrics.DirectionDebit).Add(float64(-o.Payout))
	}
}

func (s *service) publishCompleted(ctx context.Context, record *domain.RoundRecord) {
	if s.publisher == nil {
		return
	}

	o := record.Outcome
	evt := event.NewRoundCompletedEvent(domain.RoundCompletedPayload{
		RoundID:                record.ID.String(),
		Bet:                    o.Bet,
		Payout:                 o.Payout,
		DeterminingSide:        o.DeterminingSide,
		DeterminingCombination: o.DeterminingCombination,
		DealerRolled:           o.DealerRolled,
		Timestamp:              record.ResolvedAt.Unix(),
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish round completed event", "error", err)
	}
}

func (s *service) publishReroll(ctx context.Context, roundID uuid.UUID, side domain.Side, attempt int, roll domain.Roll) {
	if s.publisher == nil {
		return
	}

	evt := event.NewRoundRerollEvent(domain.RoundRerollPayload{
		RoundID:   roundID.String(),
		Side:      side,
		Attempt:   attempt,
		Roll:      roll.String(),
		Timestamp: time.Now().Unix(),
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish reroll event", "error", err)
	}
}

func (s *service) publishExhausted(ctx context.Context, roundID uuid.UUID, side domain.Side) {
	if s.publisher == nil {
		return
	}

	evt := event.NewSideExhaustedEvent(domain.SideExhaustedPayload{
		RoundID:   roundID.String(),
		Side:      side,
		Attempts:  MaxAttempts,
		Timestamp: time.Now().Unix(),
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish exhausted event", "error", err)
	}
}
