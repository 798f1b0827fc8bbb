package dice

import "github.com/osse101/ChinchiroBot_Go/internal/domain"

// Comparison values for the fixed combinations. ARASHI ranks at die value+3
// so all triplets order correctly between SHIGORO (7) and PINZORO (10).
const (
	valueHifumi  = 0
	valueShigoro = 7
	valuePinzoro = 10
	arashiOffset = 3
)

// Payout multipliers per combination
const (
	MultiplierHifumi  = -2
	MultiplierShigoro = 2
	MultiplierPinzoro = 5
	MultiplierArashi  = 3
	MultiplierMe      = 1
	MultiplierMenashi = 0
)

// Classify evaluates a roll into its combination, comparison value and
// payout multiplier. The checks run in official ranking order; first match
// wins, which matters because the individual tests are not orthogonal
// (1-1-1 is also a triplet, 1-2-3 is also three distinct faces).
func Classify(r domain.Roll) domain.Classification {
	switch {
	case r == domain.Roll{1, 2, 3}:
		return result(r, domain.CombinationHifumi, valueHifumi, MultiplierHifumi)

	case r == domain.Roll{4, 5, 6}:
		return result(r, domain.CombinationShigoro, valueShigoro, MultiplierShigoro)

	case r == domain.Roll{1, 1, 1}:
		return result(r, domain.CombinationPinzoro, valuePinzoro, MultiplierPinzoro)

	case r[0] == r[1] && r[1] == r[2]:
		return result(r, domain.CombinationArashi, r[0]+arashiOffset, MultiplierArashi)

	case r[0] == r[1]:
		// Pair in the low slots, the odd die is the high one
		return result(r, domain.CombinationMe, r[2], MultiplierMe)

	case r[1] == r[2]:
		return result(r, domain.CombinationMe, r[0], MultiplierMe)
	}

	return result(r, domain.CombinationMenashi, 0, MultiplierMenashi)
}

func result(r domain.Roll, c domain.Combination, value, multiplier int) domain.Classification {
	return domain.Classification{
		Roll:        r,
		Combination: c,
		Value:       value,
		Multiplier:  multiplier,
	}
}
