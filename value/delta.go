package value

import "fmt"

// Delta is a signed duration held in normalized form: 0 <= Seconds < 86400
// and 0 <= Micros < 1e6, with Days carrying the sign. This mirrors the
// normalized duration shape the drawing algorithm iterates over.
type Delta struct {
	Days    int
	Seconds int
	Micros  int
}

// Day-count magnitude limit for Delta.
const MaxDeltaDays = 999999999

// Extreme normalized durations.
var (
	MinDelta = Delta{Days: -MaxDeltaDays}
	MaxDelta = Delta{Days: MaxDeltaDays, Seconds: 86399, Micros: 999999}
)

// DeltaOf normalizes arbitrary day/second/microsecond counts into a Delta.
// It fails with ErrOverflow when the result exceeds the day-count limit.
func DeltaOf(days, seconds, micros int64) (Delta, error) {
	seconds += floorDiv(micros, 1000000)
	micros -= floorDiv(micros, 1000000) * 1000000
	days += floorDiv(seconds, 86400)
	seconds -= floorDiv(seconds, 86400) * 86400
	if days < -MaxDeltaDays || days > MaxDeltaDays {
		return Delta{}, fmt.Errorf("%w: %d days", ErrOverflow, days)
	}
	return Delta{Days: int(days), Seconds: int(seconds), Micros: int(micros)}, nil
}

// DeltaFromMicros builds a normalized Delta from a microsecond count.
func DeltaFromMicros(micros int64) Delta {
	d, _ := DeltaOf(0, 0, micros) // cannot overflow: int64 micros < MaxDeltaDays days
	return d
}

// Compare orders two normalized durations.
func (d Delta) Compare(o Delta) int {
	if c := cmpInt(d.Days, o.Days); c != 0 {
		return c
	}
	if c := cmpInt(d.Seconds, o.Seconds); c != 0 {
		return c
	}
	return cmpInt(d.Micros, o.Micros)
}

// IsZero reports whether the duration is exactly zero.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// TotalMicros returns the duration as a microsecond count. It is exact for
// any span under roughly 106 million days, which covers every duration this
// package produces from datetime arithmetic and every timezone offset.
func (d Delta) TotalMicros() int64 {
	return int64(d.Days)*microsPerDay + int64(d.Seconds)*microsPerSecond + int64(d.Micros)
}

func (d Delta) String() string {
	return fmt.Sprintf("%dd%ds.%06d", d.Days, d.Seconds, d.Micros)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
