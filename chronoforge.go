// Package chronoforge generates bounded temporal test values: dates, times
// of day, naive or timezone-aware datetimes, and durations. Values always
// respect the caller's bounds and calendar validity, shrink toward midnight
// on January 1st 2000 under a shrinking engine, and aware datetimes are
// deliberately biased toward timezone-transition edge cases: nonexistent
// local times, ambiguous local times, and leap-second smear windows.
//
// The package owns no randomness. Every strategy is driven by an
// engine.Engine, and the same engine stream always reproduces the same
// value, which is what makes shrinking and replay possible.
package chronoforge

import (
	"errors"
	"fmt"

	"github.com/mrsinham/chronoforge/engine"
	"github.com/mrsinham/chronoforge/tz"
)

// Strategy produces values of one kind when driven by an engine. Draw
// returns engine.ErrInvalid when the attempt should be abandoned and
// retried with different randomness; any other error is a bug in the
// caller's engine, not a recoverable condition.
type Strategy[T any] interface {
	Draw(e engine.Engine) (T, error)
}

type just[T any] struct{ v T }

func (j just[T]) Draw(engine.Engine) (T, error) { return j.v, nil }

// Just returns a degenerate strategy that always produces v and consumes no
// randomness.
func Just[T any](v T) Strategy[T] { return just[T]{v} }

// drawAttempts is how many construction failures a single draw tolerates.
const drawAttempts = 3

// drawWithRetry runs one draw attempt up to drawAttempts times, retrying
// only on construction failures. Exhaustion notes a diagnostic and signals
// the draw invalid.
func drawWithRetry[T any](e engine.Engine, exhausted string, attempt func() (T, error)) (T, error) {
	var zero T
	for i := 0; i < drawAttempts; i++ {
		v, err := attempt()
		if err == nil {
			return v, nil
		}
		if errors.Is(err, engine.ErrInvalid) {
			return zero, err
		}
	}
	e.NoteEvent(exhausted)
	e.MarkInvalid(exhausted)
	return zero, engine.ErrInvalid
}

// ZoneStrategy supplies the timezone capability for aware draws. A nil Zone
// means the value stays naive.
type ZoneStrategy interface {
	DrawZone(e engine.Engine) (tz.Zone, error)
}

type noZones struct{}

func (noZones) DrawZone(engine.Engine) (tz.Zone, error) { return nil, nil }
func (noZones) String() string                          { return "no timezones" }

// NoZones produces only naive values.
func NoZones() ZoneStrategy { return noZones{} }

type justZone struct{ z tz.Zone }

func (s justZone) DrawZone(engine.Engine) (tz.Zone, error) { return s.z, nil }
func (s justZone) String() string {
	return fmt.Sprintf("just %T", s.z)
}

// JustZone always supplies the given zone.
func JustZone(z tz.Zone) ZoneStrategy { return justZone{z} }

// zonePickLabel marks the zone choice as its own structural unit.
var zonePickLabel = engine.LabelFromName("pick a timezone")

type pickZone struct{ zones []tz.Zone }

func (s pickZone) DrawZone(e engine.Engine) (tz.Zone, error) {
	i := e.BoundedInt(0, int64(len(s.zones)-1), 0, nil)
	return s.zones[i], nil
}

func (s pickZone) String() string {
	return fmt.Sprintf("one of %d timezones", len(s.zones))
}

// PickZone draws uniformly from the given zones, shrinking toward the
// first. At least one zone is required.
func PickZone(zones ...tz.Zone) (ZoneStrategy, error) {
	if len(zones) == 0 {
		return nil, errors.New("PickZone: at least one zone is required")
	}
	return pickZone{zones: zones}, nil
}

// describe names a zone source in diagnostics.
func describe(zones ZoneStrategy) string {
	if s, ok := zones.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", zones)
}
