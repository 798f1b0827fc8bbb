package dice

import (
	"math/rand"
	"time"

	"github.com/osse101/ChinchiroBot_Go/internal/domain"
)

// Roller produces three independent uniform die values
type Roller struct {
	rng func(int) int // Injectable for testing
}

// Config for the dice roller
type Config struct {
	// Optional seed for deterministic replay in tests
	Seed int64
}

// NewRoller creates a roller backed by its own PRNG source
func NewRoller(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	random := rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
	return &Roller{rng: random.Intn}
}

// NewRollerWithRNG creates a roller with an injected RNG function.
// rng(n) must return a uniform value in [0,n).
func NewRollerWithRNG(rng func(int) int) *Roller {
	return &Roller{rng: rng}
}

// Roll throws three dice and returns them as a sorted Roll
func (r *Roller) Roll() (domain.Roll, error) {
	return domain.NewRoll(r.Die(), r.Die(), r.Die())
}

// Die returns a single uniform value in [1,6]. Used by the reveal
// animation for cosmetic spin values as well as real throws.
func (r *Roller) Die() int {
	return r.rng(domain.DieMax) + 1
}
