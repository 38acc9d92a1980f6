package tz

import (
	"time"

	"github.com/mrsinham/chronoforge/value"
)

// Location adapts a stdlib *time.Location into a fold-aware Zone. Offsets
// for a local instant are resolved by probing the offsets in effect one day
// before and after the nominal instant and validating each candidate by
// round-trip, which reproduces exact gap and overlap behavior from the
// location's transition data.
type Location struct {
	loc *time.Location
}

// NewLocation wraps a *time.Location.
func NewLocation(loc *time.Location) *Location {
	return &Location{loc: loc}
}

// Kind implements Zone.
func (l *Location) Kind() Kind { return FoldAware }

// offsetAtUTC returns the zone offset in seconds for an absolute instant.
func (l *Location) offsetAtUTC(utcSec int64) int64 {
	_, off := time.Unix(utcSec, 0).In(l.loc).Zone()
	return int64(off)
}

func (l *Location) abbrevAtUTC(utcSec int64) string {
	name, _ := time.Unix(utcSec, 0).In(l.loc).Zone()
	return name
}

// offsetsForLocal resolves the candidate offsets for a naive local instant.
// valid counts how many candidates survive the round-trip check: 0 means
// the local time is inside a gap, 2 means it is ambiguous. early/late are
// the offsets in effect before and after the enclosing transition; they
// coincide when the instant is unambiguous.
func (l *Location) offsetsForLocal(local value.DateTime) (early, late int64, valid int) {
	localSec := floorDivInt64(local.AbsMicros(), 1000000)
	early = l.offsetAtUTC(localSec - 86400)
	late = l.offsetAtUTC(localSec + 86400)
	validEarly := l.offsetAtUTC(localSec-early) == early
	validLate := l.offsetAtUTC(localSec-late) == late
	switch {
	case validEarly && validLate && early == late:
		return early, late, 1
	case validEarly && validLate:
		return early, late, 2
	case validEarly:
		return early, early, 1
	case validLate:
		return late, late, 1
	}
	return early, late, 0
}

// offsetFor resolves the offset for a local instant honoring fold: fold 0
// selects the offset in effect before the transition, fold 1 the one after.
func (l *Location) offsetFor(local value.DateTime, fold int) int64 {
	early, late, _ := l.offsetsForLocal(local)
	if fold == 0 {
		return early
	}
	return late
}

// UTCOffset implements Zone, honoring the fold carried on local.
func (l *Location) UTCOffset(local value.DateTime) value.Delta {
	return value.DeltaFromMicros(l.offsetFor(local, local.Fold) * 1000000)
}

// DSTOffset implements Zone. The standard offset is approximated as the
// smaller of the offsets in effect at the start of January and July of the
// local year, which holds for both hemispheres.
func (l *Location) DSTOffset(local value.DateTime) value.Delta {
	jan := value.DateTime{Year: local.Year, Month: 1, Day: 1}
	jul := value.DateTime{Year: local.Year, Month: 7, Day: 1}
	offJan := l.offsetAtUTC(floorDivInt64(jan.AbsMicros(), 1000000))
	offJul := l.offsetAtUTC(floorDivInt64(jul.AbsMicros(), 1000000))
	std := offJan
	if offJul < std {
		std = offJul
	}
	return value.DeltaFromMicros((l.offsetFor(local, local.Fold) - std) * 1000000)
}

// Name implements Zone.
func (l *Location) Name(local value.DateTime) string {
	localSec := floorDivInt64(local.AbsMicros(), 1000000)
	return l.abbrevAtUTC(localSec - l.offsetFor(local, local.Fold))
}

// Localize implements Zone: fold-aware zones attach directly.
func (l *Location) Localize(naive value.DateTime, fold int) (Zoned, error) {
	return Zoned{Naive: naive.WithFold(fold), Zone: l}, nil
}

// FromUTC implements Zone.
func (l *Location) FromUTC(utcMicros int64) (value.DateTime, error) {
	utcSec := floorDivInt64(utcMicros, 1000000)
	off := l.offsetAtUTC(utcSec)
	return value.DateTimeFromAbsMicros(utcMicros + off*1000000)
}

func floorDivInt64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
