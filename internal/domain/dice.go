package domain

import (
	"fmt"
	"sort"
)

// Die face bounds
const (
	DieMin = 1
	DieMax = 6
)

// Combination represents the named category a roll falls into
type Combination string

const (
	CombinationHifumi  Combination = "HIFUMI"  // 1-2-3, auto lose x2
	CombinationShigoro Combination = "SHIGORO" // 4-5-6, auto win x2
	CombinationPinzoro Combination = "PINZORO" // 1-1-1, best hand, x5
	CombinationArashi  Combination = "ARASHI"  // any other triplet, x3
	CombinationMe      Combination = "ME"      // pair + odd die, compared by the odd die
	CombinationMenashi Combination = "MENASHI" // no combination, triggers a reroll
)

// Roll is the sorted outcome of one three-die throw.
// Always stored ascending so classification is order-invariant.
type Roll [3]int

// NewRoll validates the die values and returns them as a sorted Roll.
// Values outside [1,6] are a contract violation by the roller and are rejected.
func NewRoll(a, b, c int) (Roll, error) {
	d := []int{a, b, c}
	for _, v := range d {
		if v < DieMin || v > DieMax {
			return Roll{}, fmt.Errorf("%w: %d", ErrInvalidDie, v)
		}
	}
	sort.Ints(d)
	return Roll{d[0], d[1], d[2]}, nil
}

// String formats the roll as "a-b-c" for display
func (r Roll) String() string {
	return fmt.Sprintf("%d-%d-%d", r[0], r[1], r[2])
}

// Classification is the immutable evaluation of a Roll: its combination,
// the comparison value used when two ME hands face off, and the payout
// multiplier applied to the stake.
type Classification struct {
	Roll        Roll        `json:"roll"`
	Combination Combination `json:"combination"`
	Value       int         `json:"value"`
	Multiplier  int         `json:"multiplier"`
}

// IsValid reports whether the roll produced a recognized combination.
// MENASHI rolls are invalid and must be rerolled.
func (c Classification) IsValid() bool {
	return c.Combination != CombinationMenashi
}

// IsAutoWin reports whether the combination resolves the round in the
// roller's favor without consulting the opposing side.
func (c Classification) IsAutoWin() bool {
	switch c.Combination {
	case CombinationShigoro, CombinationPinzoro, CombinationArashi:
		return true
	}
	return false
}

// Beats compares two classifications by comparison value.
// Returns 1 if c wins, -1 if other wins, 0 on tie.
func (c Classification) Beats(other Classification) int {
	switch {
	case c.Value > other.Value:
		return 1
	case c.Value < other.Value:
		return -1
	}
	return 0
}
