// Package nasty classifies timezone-attached datetimes as edge cases and
// steers draws toward them. A value is "nasty" when its local time does not
// exist (skipped by a forward clock transition), occurs twice (backward
// transition), or falls inside a leap-second smear window.
package nasty

import (
	"github.com/mrsinham/chronoforge/internal/leapsec"
	"github.com/mrsinham/chronoforge/tz"
	"github.com/mrsinham/chronoforge/value"
)

// DoesNotExist reports whether the value's naive fields change when
// round-tripped through UTC. This is an exact test, not a heuristic.
// Overflow at the representable edge also counts as nonexistent.
func DoesNotExist(z tz.Zoned) bool {
	if z.Zone == nil {
		return false
	}
	back, err := z.Zone.FromUTC(z.UTCMicros())
	if err != nil {
		return true
	}
	return z.Naive.Compare(back) != 0
}

// IsAmbiguous reports whether the same naive fields with fold 0 and fold 1
// map to different UTC instants. Zones that do not honor fold are never
// ambiguous.
func IsAmbiguous(z tz.Zoned) bool {
	if z.Zone == nil || z.Zone.Kind() != tz.FoldAware {
		return false
	}
	f0, err0 := z.Zone.Localize(z.Naive, 0)
	f1, err1 := z.Zone.Localize(z.Naive, 1)
	if err0 != nil || err1 != nil {
		return false
	}
	return f0.UTCMicros() != f1.UTCMicros()
}

// InLeapSmear reports whether the instant lies within twelve hours of a
// historical leap second.
func InLeapSmear(z tz.Zoned) bool {
	if z.Zone == nil {
		return false
	}
	return leapsec.Near(z.UTCMicros())
}

// IsNasty reports whether any of the three edge-case predicates holds.
func IsNasty(z tz.Zoned) bool {
	return DoesNotExist(z) || IsAmbiguous(z) || InLeapSmear(z)
}

// center is the canonical shrink target; sub-intervals containing it are
// preferred so located edge cases stay legible.
var center = value.DateTime{Year: 2000, Month: 1, Day: 1}

// Bounds inspects the halves (lo, mid) and (mid, hi) and returns one that
// is structurally guaranteed to contain a nasty instant: either the zone's
// UTC offset differs between its endpoints, or it contains a full
// leap-smear window with margin on both sides. When both halves could
// qualify, the one spanning the canonical center wins. Nil results mean no
// structural guarantee is available at this position.
func Bounds(lo, mid, hi tz.Zoned) (*tz.Zoned, *tz.Zoned) {
	pairs := [2][2]tz.Zoned{{lo, mid}, {mid, hi}}
	if mid.Naive.Compare(center) <= 0 {
		pairs[0], pairs[1] = pairs[1], pairs[0]
	}
	for _, p := range pairs {
		min, max := p[0], p[1]
		if min.Zone.UTCOffset(min.Naive) != max.Zone.UTCOffset(max.Naive) ||
			leapsec.WindowInside(min.UTCMicros(), max.UTCMicros()) {
			return &min, &max
		}
	}
	return nil, nil
}
