package round

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChinchiroBot_Go/internal/domain"
)

// scriptedRoller feeds a fixed sequence of rolls and counts consumption
type scriptedRoller struct {
	rolls []domain.Roll
	calls int
}

func (r *scriptedRoller) Roll() (domain.Roll, error) {
	if r.calls >= len(r.rolls) {
		panic("scripted roller exhausted")
	}
	roll := r.rolls[r.calls]
	r.calls++
	return roll, nil
}

// MockAnimator
type MockAnimator struct {
	mock.Mock
}

func (m *MockAnimator) Animate(ctx context.Context, side domain.Side, attempt int, roll domain.Roll, finalAttempt bool) error {
	args := m.Called(ctx, side, attempt, roll, finalAttempt)
	return args.Error(0)
}

func roll(a, b, c int) domain.Roll {
	r, err := domain.NewRoll(a, b, c)
	if err != nil {
		panic(err)
	}
	return r
}

func playRound(t *testing.T, bet int, rolls ...domain.Roll) (*domain.RoundRecord, *scriptedRoller) {
	t.Helper()
	roller := &scriptedRoller{rolls: rolls}
	s := NewService(roller, nil, nil)

	record, err := s.PlayRound(context.Background(), bet)
	require.NoError(t, err)
	return record, roller
}

func TestPlayRound_PinzoroAutoWin(t *testing.T) {
	record, roller := playRound(t, 100, roll(1, 1, 1))

	assert.Equal(t, 500, record.Outcome.Payout)
	assert.Equal(t, domain.SidePlayer, record.Outcome.DeterminingSide)
	assert.Equal(t, domain.CombinationPinzoro, record.Outcome.DeterminingCombination)
	assert.False(t, record.Outcome.DealerRolled)
	assert.Equal(t, 1, roller.calls, "dealer must never roll on an auto-win")
}

func TestPlayRound_HifumiAutoLose(t *testing.T) {
	record, roller := playRound(t, 100, roll(1, 2, 3))

	assert.Equal(t, -200, record.Outcome.Payout)
	assert.Equal(t, domain.SidePlayer, record.Outcome.DeterminingSide)
	assert.Equal(t, domain.CombinationHifumi, record.Outcome.DeterminingCombination)
	assert.Equal(t, 1, roller.calls, "dealer must never roll after player hifumi")
}

func TestPlayRound_ShigoroAndArashiAutoWin(t *testing.T) {
	record, roller := playRound(t, 100, roll(4, 5, 6))
	assert.Equal(t, 200, record.Outcome.Payout)
	assert.Equal(t, 1, roller.calls)

	record, roller = playRound(t, 100, roll(3, 3, 3))
	assert.Equal(t, 300, record.Outcome.Payout)
	assert.Equal(t, domain.CombinationArashi, record.Outcome.DeterminingCombination)
	assert.Equal(t, 1, roller.calls)
}

func TestPlayRound_DealerHifumiPaysFlatDouble(t *testing.T) {
	// Player ME:5, dealer hifumi. Pays 2x bet regardless of the ME multiplier.
	record, _ := playRound(t, 100, roll(2, 3, 5), roll(1, 2, 3))

	assert.Equal(t, 200, record.Outcome.Payout)
	assert.Equal(t, domain.SideDealer, record.Outcome.DeterminingSide)
	assert.Equal(t, domain.CombinationHifumi, record.Outcome.DeterminingCombination)
	assert.True(t, record.Outcome.DealerRolled)
}

func TestPlayRound_DealerAutoWin(t *testing.T) {
	record, _ := playRound(t, 100, roll(2, 2, 5), roll(6, 6, 6))

	assert.Equal(t, -300, record.Outcome.Payout)
	assert.Equal(t, domain.SideDealer, record.Outcome.DeterminingSide)
	assert.Equal(t, domain.CombinationArashi, record.Outcome.DeterminingCombination)
}

func TestPlayRound_MeComparison(t *testing.T) {
	// Player ME:6 beats dealer ME:2
	record, _ := playRound(t, 50, roll(3, 3, 6), roll(4, 4, 2))
	assert.Equal(t, 50, record.Outcome.Payout)
	assert.Equal(t, domain.SidePlayer, record.Outcome.DeterminingSide)

	// Dealer ME:6 beats player ME:2
	record, _ = playRound(t, 50, roll(4, 4, 2), roll(3, 3, 6))
	assert.Equal(t, -50, record.Outcome.Payout)
	assert.Equal(t, domain.SideDealer, record.Outcome.DeterminingSide)
}

func TestPlayRound_MeTieReturnsStake(t *testing.T) {
	record, _ := playRound(t, 100, roll(2, 2, 4), roll(5, 5, 4))

	assert.Equal(t, 0, record.Outcome.Payout)
	assert.True(t, record.Outcome.IsDraw())
	assert.Equal(t, domain.SideNone, record.Outcome.DeterminingSide)
}

func TestPlayRound_PlayerRerollsThenResolves(t *testing.T) {
	// Two menashi rolls, then pinzoro on the final attempt
	record, roller := playRound(t, 100,
		roll(1, 3, 5), roll(2, 4, 6), roll(1, 1, 1))

	assert.Equal(t, 500, record.Outcome.Payout)
	assert.Equal(t, 3, roller.calls)
}

func TestPlayRound_PlayerExhaustedLosesStake(t *testing.T) {
	record, roller := playRound(t, 100,
		roll(1, 3, 5), roll(2, 4, 6), roll(1, 3, 6))

	assert.Equal(t, -100, record.Outcome.Payout)
	assert.True(t, record.Outcome.PlayerExhausted)
	assert.Equal(t, domain.SidePlayer, record.Outcome.DeterminingSide)
	assert.Equal(t, domain.Combination(""), record.Outcome.DeterminingCombination)
	assert.Equal(t, 3, roller.calls, "dealer must not roll when player is exhausted")
}

func TestPlayRound_DealerExhaustedForfeits(t *testing.T) {
	// Player ME:4, dealer burns all three attempts
	record, roller := playRound(t, 100,
		roll(2, 2, 4),
		roll(1, 3, 5), roll(2, 4, 6), roll(1, 3, 6))

	assert.Equal(t, 100, record.Outcome.Payout)
	assert.True(t, record.Outcome.DealerExhausted)
	assert.Equal(t, domain.SideDealer, record.Outcome.DeterminingSide)
	assert.Equal(t, 4, roller.calls)
}

func TestPlayRound_InvalidBetRejected(t *testing.T) {
	s := NewService(&scriptedRoller{}, nil, nil)

	_, err := s.PlayRound(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidBet)

	_, err = s.PlayRound(context.Background(), -50)
	assert.ErrorIs(t, err, domain.ErrInvalidBet)
}

func TestPlayRound_AnimatorSeesEachAttempt(t *testing.T) {
	roller := &scriptedRoller{rolls: []domain.Roll{
		roll(1, 3, 5), roll(2, 4, 6), roll(2, 2, 6),
	}}
	animator := new(MockAnimator)
	animator.On("Animate", mock.Anything, domain.SidePlayer, 1, roll(1, 3, 5), false).Return(nil)
	animator.On("Animate", mock.Anything, domain.SidePlayer, 2, roll(2, 4, 6), false).Return(nil)
	animator.On("Animate", mock.Anything, domain.SidePlayer, 3, roll(2, 2, 6), true).Return(nil)
	// Dealer side follows once the player lands ME
	animator.On("Animate", mock.Anything, domain.SideDealer, 1, roll(4, 5, 6), false).Return(nil)

	roller.rolls = append(roller.rolls, roll(4, 5, 6))

	s := NewService(roller, animator, nil)
	record, err := s.PlayRound(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, -20, record.Outcome.Payout)
	animator.AssertExpectations(t)
}

func TestPlayRound_AnimatorErrorAborts(t *testing.T) {
	roller := &scriptedRoller{rolls: []domain.Roll{roll(1, 1, 1)}}
	animator := new(MockAnimator)
	animator.On("Animate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(context.Canceled)

	s := NewService(roller, animator, nil)
	_, err := s.PlayRound(context.Background(), 10)
	assert.ErrorIs(t, err, context.Canceled)
}
