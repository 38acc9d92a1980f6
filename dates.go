package chronoforge

import (
	"fmt"

	"github.com/mrsinham/chronoforge/engine"
	"github.com/mrsinham/chronoforge/internal/drawer"
	"github.com/mrsinham/chronoforge/value"
)

// DateStrategy draws calendar dates in [min, max].
type DateStrategy struct {
	min, max value.Date
}

// Dates returns a strategy for dates between min and max inclusive.
// Examples shrink toward January 1st 2000. Equal bounds collapse to a
// degenerate strategy. Malformed or inverted bounds are a caller error.
func Dates(min, max value.Date) (Strategy[value.Date], error) {
	if _, err := value.NewDate(min.Year, min.Month, min.Day); err != nil {
		return nil, fmt.Errorf("min_value %v: %w", min, err)
	}
	if _, err := value.NewDate(max.Year, max.Month, max.Day); err != nil {
		return nil, fmt.Errorf("max_value %v: %w", max, err)
	}
	if min.Compare(max) > 0 {
		return nil, fmt.Errorf("min_value %v must be at most max_value %v", min, max)
	}
	if min == max {
		return Just(min), nil
	}
	return &DateStrategy{min: min, max: max}, nil
}

// Draw implements Strategy.
func (s *DateStrategy) Draw(e engine.Engine) (value.Date, error) {
	lo := value.Combine(s.min, value.Time{})
	hi := value.Combine(s.max, value.Time{})
	exhausted := fmt.Sprintf("%d attempts to draw a date between %v and %v failed.",
		drawAttempts, s.min, s.max)
	return drawWithRetry(e, exhausted, func() (value.Date, error) {
		v, err := drawer.Draw(e, drawer.KindDate, lo, hi, nil)
		if err != nil {
			return value.Date{}, err
		}
		return v.Date(), nil
	})
}
