package reveal

import "time"

// Clock abstracts wall time so reveal timing can be replayed deterministically
// in tests with a fake clock.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real-time Clock used in production
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
