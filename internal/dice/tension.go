package dice

// IsTense decides whether a partially revealed roll warrants the longer
// suspense delay before the final die is shown. fixed holds the confirmed
// values so far (at most two); the still-hidden die is never inspected.
//
// A guaranteed-resolving roll (the last allowed attempt) is always tense.
// With two dice fixed, the situation is tense when a triplet, 4-5-6 or
// 1-2-3 is still reachable.
func IsTense(fixed []int, finalAttempt bool) bool {
	if finalAttempt {
		return true
	}
	if len(fixed) < 2 {
		return false
	}

	a, b := fixed[0], fixed[1]

	// Potential ARASHI or PINZORO
	if a == b {
		return true
	}

	// Potential SHIGORO
	if a >= 4 && b >= 4 {
		return true
	}

	// Potential HIFUMI
	if a <= 3 && b <= 3 {
		return true
	}

	return false
}
