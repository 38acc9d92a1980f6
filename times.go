package chronoforge

import (
	"fmt"

	"github.com/mrsinham/chronoforge/engine"
	"github.com/mrsinham/chronoforge/internal/drawer"
	"github.com/mrsinham/chronoforge/tz"
	"github.com/mrsinham/chronoforge/value"
)

// TimeStrategy draws times of day in [min, max], optionally attaching a
// zone from a zone strategy. Time-of-day draws never run the edge-case
// search; offset transitions are a property of full datetimes.
type TimeStrategy struct {
	min, max value.Time
	zones    ZoneStrategy
}

// Times returns a strategy for times of day between min and max inclusive.
// Examples shrink toward midnight. A nil zones strategy yields naive times.
func Times(min, max value.Time, zones ZoneStrategy) (Strategy[tz.ZonedTime], error) {
	if _, err := value.NewTime(min.Hour, min.Minute, min.Second, min.Micro, min.Fold); err != nil {
		return nil, fmt.Errorf("min_value %v: %w", min, err)
	}
	if _, err := value.NewTime(max.Hour, max.Minute, max.Second, max.Micro, max.Fold); err != nil {
		return nil, fmt.Errorf("max_value %v: %w", max, err)
	}
	if min.Compare(max) > 0 {
		return nil, fmt.Errorf("min_value %v must be at most max_value %v", min, max)
	}
	if zones == nil {
		zones = NoZones()
	}
	if min.Compare(max) == 0 {
		if _, naive := zones.(noZones); naive {
			return Just(tz.ZonedTime{Time: min}), nil
		}
	}
	return &TimeStrategy{min: min, max: max, zones: zones}, nil
}

// Draw implements Strategy. The time fields are drawn before the zone,
// matching the structure a shrinking engine expects.
func (s *TimeStrategy) Draw(e engine.Engine) (tz.ZonedTime, error) {
	lo := value.Combine(value.MinDate, s.min)
	hi := value.Combine(value.MinDate, s.max)
	exhausted := fmt.Sprintf("%d attempts to draw a time between %v and %v with timezone from %v failed.",
		drawAttempts, s.min, s.max, describe(s.zones))
	return drawWithRetry(e, exhausted, func() (tz.ZonedTime, error) {
		rec, err := drawer.Draw(e, drawer.KindTime, lo, hi, nil)
		if err != nil {
			return tz.ZonedTime{}, err
		}
		zone, err := s.zones.DrawZone(e)
		if err != nil {
			return tz.ZonedTime{}, err
		}
		return tz.ZonedTime{Time: rec.TimeOfDay(), Zone: zone}, nil
	})
}
