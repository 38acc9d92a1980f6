package chronoforge

import (
	"fmt"

	"github.com/mrsinham/chronoforge/engine"
	"github.com/mrsinham/chronoforge/value"
)

// DeltaStrategy draws normalized durations in [min, max].
type DeltaStrategy struct {
	min, max value.Delta
}

// Deltas returns a strategy for durations between min and max inclusive.
// Bounds must be in normalized form (as produced by value.DeltaOf).
// Examples shrink toward zero. Equal bounds collapse to a degenerate
// strategy.
func Deltas(min, max value.Delta) (Strategy[value.Delta], error) {
	for _, b := range []struct {
		name string
		d    value.Delta
	}{{"min_value", min}, {"max_value", max}} {
		n, err := value.DeltaOf(int64(b.d.Days), int64(b.d.Seconds), int64(b.d.Micros))
		if err != nil || n != b.d {
			return nil, fmt.Errorf("%s %v is not a normalized duration", b.name, b.d)
		}
	}
	if min.Compare(max) > 0 {
		return nil, fmt.Errorf("min_value %v must be at most max_value %v", min, max)
	}
	if min == max {
		return Just(min), nil
	}
	return &DeltaStrategy{min: min, max: max}, nil
}

// deltaField mirrors the calendar drawer's descriptors for the duration
// field list.
type deltaField struct {
	name     string
	min, max int64
	get      func(d value.Delta) int64
	set      func(d *value.Delta, x int64)
}

var deltaFields = []deltaField{
	{"days", -value.MaxDeltaDays, value.MaxDeltaDays,
		func(d value.Delta) int64 { return int64(d.Days) },
		func(d *value.Delta, x int64) { d.Days = int(x) }},
	{"seconds", 0, 86399,
		func(d value.Delta) int64 { return int64(d.Seconds) },
		func(d *value.Delta, x int64) { d.Seconds = int(x) }},
	{"microseconds", 0, 999999,
		func(d value.Delta) int64 { return int64(d.Micros) },
		func(d *value.Delta, x int64) { d.Micros = int(x) }},
}

// Draw implements Strategy. The capped field walk is the same one the
// calendar drawer performs, over days, seconds and microseconds, each
// centered on zero.
func (s *DeltaStrategy) Draw(e engine.Engine) (value.Delta, error) {
	var r value.Delta
	capLow, capHigh := true, true
	for _, f := range deltaFields {
		low, high := f.min, f.max
		if capLow {
			low = f.get(s.min)
		}
		if capHigh {
			high = f.get(s.max)
		}
		val := e.BoundedInt(low, high, 0, nil)
		f.set(&r, val)
		capLow = capLow && val == low
		capHigh = capHigh && val == high
	}
	return r, nil
}
