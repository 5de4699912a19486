package animation

import "time"

// Blinker is a free-running square-wave timer. Widgets use it to blink
// warning states and to drive expanding-ring pulses without owning any
// per-frame bookkeeping: both outputs are pure functions of the clock.
type Blinker struct {
	start  time.Time
	period time.Duration
}

// NewBlinker creates a blinker with the given period. A non-positive
// period is coerced to one second.
func NewBlinker(period time.Duration) *Blinker {
	if period <= 0 {
		period = time.Second
	}
	return &Blinker{start: Now(), period: period}
}

// Blink reports whether the blinker is currently in an "off" phase: true
// during every odd period since the blinker started.
func (b *Blinker) Blink() bool {
	elapsed := Now().Sub(b.start)
	periods := elapsed / b.period
	return periods&1 == 1
}

// Phase returns the position within the current period as a value in
// [0, 1). Useful for expanding-ring and sweep animations.
func (b *Blinker) Phase() float64 {
	elapsed := Now().Sub(b.start)
	rem := elapsed % b.period
	return float64(rem) / float64(b.period)
}

// Restart resets the blinker's origin to the current time.
func (b *Blinker) Restart() {
	b.start = Now()
}
