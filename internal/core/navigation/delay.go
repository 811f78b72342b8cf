package navigation

import (
	"math/rand/v2"
	"time"
)

// Delayer yields the simulated load time of a transition.
type Delayer interface {
	Next() time.Duration
}

// UniformDelay draws delays uniformly from [Min, Max).
type UniformDelay struct {
	Min time.Duration
	Max time.Duration
}

// Next returns a random duration in [Min, Max). If the range is empty Min is
// returned.
func (d UniformDelay) Next() time.Duration {
	if d.Max <= d.Min {
		return d.Min
	}
	return d.Min + rand.N(d.Max-d.Min)
}

// FixedDelay always returns the same duration.
type FixedDelay time.Duration

// Next returns the fixed duration.
func (d FixedDelay) Next() time.Duration {
	return time.Duration(d)
}

// LoadingProgress returns the cosmetic progress value shown on the loading
// screen, in [20, 100).
func LoadingProgress() int {
	return 20 + rand.IntN(80)
}
