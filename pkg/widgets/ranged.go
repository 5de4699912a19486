package widgets

import (
	"github.com/go-cockpit/cockpit/pkg/errors"
	"github.com/go-cockpit/cockpit/pkg/graphics"
)

// ranged holds a telemetry value confined to [min, max]. Setters clamp
// silently; only construction rejects a reversed range, because swapping
// min and max would hide a caller bug.
type ranged struct {
	min   float64
	max   float64
	value float64
}

func newRanged(op string, min, max float64) (ranged, error) {
	if min > max {
		return ranged{}, errors.InvalidRange(op, min, max)
	}
	return ranged{min: min, max: max, value: min}, nil
}

func (r *ranged) set(v float64) {
	r.value = graphics.Clamp(v, r.min, r.max)
}

// frac returns the value's position within the range as [0, 1].
// A degenerate range (min == max) reads as 0.
func (r *ranged) frac() float64 {
	if r.max == r.min {
		return 0
	}
	return (r.value - r.min) / (r.max - r.min)
}

// fromFrac sets the value by linear interpolation across the range,
// clamping t to [0, 1].
func (r *ranged) fromFrac(t float64) {
	r.set(r.min + graphics.Clamp(t, 0, 1)*(r.max-r.min))
}
