package chronoforge

import (
	"fmt"

	"github.com/mrsinham/chronoforge/engine"
	"github.com/mrsinham/chronoforge/internal/drawer"
	"github.com/mrsinham/chronoforge/internal/nasty"
	"github.com/mrsinham/chronoforge/tz"
	"github.com/mrsinham/chronoforge/value"
)

// DatetimeStrategy draws naive or timezone-aware datetimes in [min, max].
// Aware draws run the edge-case search: one draw in four tries to land on a
// nonexistent, ambiguous, or leap-smeared instant.
type DatetimeStrategy struct {
	min, max       value.DateTime
	zones          ZoneStrategy
	allowImaginary bool
}

// Datetimes returns a strategy for datetimes between the naive bounds min
// and max inclusive. Examples shrink toward midnight on January 1st 2000.
//
// zones supplies the timezone capability per draw; nil keeps every value
// naive. With allowImaginary false, draws whose local time does not exist
// in the drawn zone are rejected through invalid-draw signaling instead of
// being returned. Imaginary datetimes are allowed by default by callers
// that want them, because malformed timestamps are a common source of bugs.
func Datetimes(min, max value.DateTime, zones ZoneStrategy, allowImaginary bool) (Strategy[tz.Zoned], error) {
	if _, err := value.NewDateTime(min.Year, min.Month, min.Day, min.Hour, min.Minute, min.Second, min.Micro, min.Fold); err != nil {
		return nil, fmt.Errorf("min_value %v: %w", min, err)
	}
	if _, err := value.NewDateTime(max.Year, max.Month, max.Day, max.Hour, max.Minute, max.Second, max.Micro, max.Fold); err != nil {
		return nil, fmt.Errorf("max_value %v: %w", max, err)
	}
	if min.Compare(max) > 0 {
		return nil, fmt.Errorf("min_value %v must be at most max_value %v", min, max)
	}
	if zones == nil {
		zones = NoZones()
	}
	if min.Compare(max) == 0 {
		// Only a naive strategy can collapse: with zones in play the zone
		// draw, the imaginary check, and legacy localization still apply
		// even to a pinned value.
		if _, naive := zones.(noZones); naive {
			return Just(tz.Zoned{Naive: min}), nil
		}
	}
	return &DatetimeStrategy{min: min, max: max, zones: zones, allowImaginary: allowImaginary}, nil
}

// Draw implements Strategy.
func (s *DatetimeStrategy) Draw(e engine.Engine) (tz.Zoned, error) {
	exhausted := fmt.Sprintf("%d attempts to draw a datetime between %v and %v with timezone from %v failed.",
		drawAttempts, s.min, s.max, describe(s.zones))
	result, err := drawWithRetry(e, exhausted, func() (tz.Zoned, error) {
		zone, err := s.zones.DrawZone(e)
		if err != nil {
			return tz.Zoned{}, err
		}
		if zone == nil {
			rec, err := drawer.Draw(e, drawer.KindDateTime, s.min, s.max, nil)
			if err != nil {
				return tz.Zoned{}, err
			}
			return tz.Zoned{Naive: rec}, nil
		}
		return nasty.Search(e, zone, s.min, s.max)
	})
	if err != nil {
		return tz.Zoned{}, err
	}
	if !s.allowImaginary && nasty.DoesNotExist(result) {
		reason := fmt.Sprintf("drew imaginary datetime %v with allow_imaginary disabled", result)
		e.MarkInvalid(reason)
		return tz.Zoned{}, engine.ErrInvalid
	}
	return result, nil
}
