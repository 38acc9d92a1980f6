// Package tz models the timezone capability the generator receives from an
// external timezone strategy. A Zone answers offset/name queries for a local
// instant and localizes naive instants; it never owns timezone-database
// logic beyond what its construction data encodes.
//
// The interface is closed over two variants: fold-aware zones, where a
// naive instant plus its fold fully determines the UTC offset, and legacy
// offset-table zones, which predate fold and need an explicit
// localize-then-normalize call sequence when attached.
package tz

import (
	"github.com/mrsinham/chronoforge/value"
)

// Kind discriminates the two zone variants.
type Kind int

const (
	// FoldAware zones resolve ambiguous and nonexistent local times
	// through the fold carried on the naive value.
	FoldAware Kind = iota
	// LegacyTable zones ignore fold and resolve through an is-DST hint
	// during localization.
	LegacyTable
)

// Zone is the timezone capability. FromUTC is the inverse mapping needed to
// round-trip an instant through UTC; local queries honor the fold carried on
// the naive value for fold-aware zones and ignore it for legacy ones.
type Zone interface {
	Kind() Kind
	Name(local value.DateTime) string
	UTCOffset(local value.DateTime) value.Delta
	DSTOffset(local value.DateTime) value.Delta
	Localize(naive value.DateTime, fold int) (Zoned, error)
	FromUTC(utcMicros int64) (value.DateTime, error)
}

// Zoned is a datetime with an attached zone. A nil Zone means naive.
type Zoned struct {
	Naive value.DateTime
	Zone  Zone
}

// ZonedTime is a time of day with an attached zone. A nil Zone means naive.
type ZonedTime struct {
	Time value.Time
	Zone Zone
}

// Attach joins a naive datetime with a zone, branching on the zone variant:
// fold-aware zones attach directly, legacy zones must go through their
// localize sequence, which may shift the naive fields of an instant the
// zone's tables cannot represent as given.
func Attach(naive value.DateTime, z Zone) (Zoned, error) {
	if z == nil {
		return Zoned{Naive: naive}, nil
	}
	if z.Kind() == LegacyTable {
		return z.Localize(naive, naive.Fold)
	}
	return Zoned{Naive: naive, Zone: z}, nil
}

// IsNaive reports whether no zone is attached.
func (z Zoned) IsNaive() bool { return z.Zone == nil }

// UTCMicros returns the instant as microseconds since the Unix epoch in
// UTC. For a naive value this treats the fields as UTC.
func (z Zoned) UTCMicros() int64 {
	if z.Zone == nil {
		return z.Naive.AbsMicros()
	}
	return z.Naive.AbsMicros() - z.Zone.UTCOffset(z.Naive).TotalMicros()
}

// Compare orders two values: by UTC instant when both carry a zone,
// otherwise by naive fields.
func (z Zoned) Compare(o Zoned) int {
	if z.Zone != nil && o.Zone != nil {
		a, b := z.UTCMicros(), o.UTCMicros()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	return z.Naive.Compare(o.Naive)
}

func (z Zoned) String() string {
	if z.Zone == nil {
		return z.Naive.String()
	}
	return z.Naive.String() + " " + z.Zone.Name(z.Naive)
}

func (z ZonedTime) String() string {
	if z.Zone == nil {
		return z.Time.String()
	}
	// The abbreviation of a bare time of day is resolved on an arbitrary
	// fixed date, as zone rules need one.
	ref := value.Combine(value.Date{Year: 2000, Month: 1, Day: 1}, z.Time)
	return z.Time.String() + " " + z.Zone.Name(ref)
}
