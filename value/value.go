// Package value holds the plain calendar value types the generator draws:
// dates, times of day, naive datetimes and durations. All values use the
// proleptic Gregorian calendar, years 1 through 9999, microsecond resolution.
package value

import (
	"errors"
	"fmt"
)

// ErrInvalidValue reports a field combination that does not form a valid
// calendar value (e.g. February 30).
var ErrInvalidValue = errors.New("invalid calendar value")

// ErrOverflow reports a conversion that leaves the representable range
// (before year 1 or after year 9999).
var ErrOverflow = errors.New("value out of representable range")

// Field bounds shared by all kinds.
const (
	MinYear  = 1
	MaxYear  = 9999
	MaxMonth = 12
	MaxDay   = 31
	MaxHour  = 23
	MaxMin   = 59
	MaxSec   = 59
	MaxMicro = 999999
)

// Date is a calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Time is a time of day. Fold disambiguates repeated local times during a
// backward clock transition; it is ignored by Compare.
type Time struct {
	Hour   int
	Minute int
	Second int
	Micro  int
	Fold   int
}

// DateTime is a naive (timezone-free) datetime. Fold is ignored by Compare.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	Micro  int
	Fold   int
}

// Extreme values for each kind.
var (
	MinDate = Date{Year: MinYear, Month: 1, Day: 1}
	MaxDate = Date{Year: MaxYear, Month: 12, Day: 31}

	MinTime = Time{}
	MaxTime = Time{Hour: MaxHour, Minute: MaxMin, Second: MaxSec, Micro: MaxMicro}

	MinDateTime = DateTime{Year: MinYear, Month: 1, Day: 1}
	MaxDateTime = DateTime{
		Year: MaxYear, Month: 12, Day: 31,
		Hour: MaxHour, Minute: MaxMin, Second: MaxSec, Micro: MaxMicro,
	}
)

// NewDate validates the fields and returns the date.
func NewDate(year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d", ErrInvalidValue, year)
	}
	if month < 1 || month > MaxMonth {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidValue, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: day %d of %04d-%02d", ErrInvalidValue, day, year, month)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// NewTime validates the fields and returns the time of day.
func NewTime(hour, minute, second, micro, fold int) (Time, error) {
	switch {
	case hour < 0 || hour > MaxHour:
		return Time{}, fmt.Errorf("%w: hour %d", ErrInvalidValue, hour)
	case minute < 0 || minute > MaxMin:
		return Time{}, fmt.Errorf("%w: minute %d", ErrInvalidValue, minute)
	case second < 0 || second > MaxSec:
		return Time{}, fmt.Errorf("%w: second %d", ErrInvalidValue, second)
	case micro < 0 || micro > MaxMicro:
		return Time{}, fmt.Errorf("%w: microsecond %d", ErrInvalidValue, micro)
	case fold != 0 && fold != 1:
		return Time{}, fmt.Errorf("%w: fold %d", ErrInvalidValue, fold)
	}
	return Time{Hour: hour, Minute: minute, Second: second, Micro: micro, Fold: fold}, nil
}

// NewDateTime validates the fields and returns the naive datetime.
func NewDateTime(year, month, day, hour, minute, second, micro, fold int) (DateTime, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	t, err := NewTime(hour, minute, second, micro, fold)
	if err != nil {
		return DateTime{}, err
	}
	return Combine(d, t), nil
}

// Combine joins a date and a time of day into a naive datetime.
func Combine(d Date, t Time) DateTime {
	return DateTime{
		Year: d.Year, Month: d.Month, Day: d.Day,
		Hour: t.Hour, Minute: t.Minute, Second: t.Second, Micro: t.Micro,
		Fold: t.Fold,
	}
}

// Date returns the calendar date portion.
func (v DateTime) Date() Date {
	return Date{Year: v.Year, Month: v.Month, Day: v.Day}
}

// TimeOfDay returns the time-of-day portion, fold included.
func (v DateTime) TimeOfDay() Time {
	return Time{Hour: v.Hour, Minute: v.Minute, Second: v.Second, Micro: v.Micro, Fold: v.Fold}
}

// WithFold returns a copy with the fold replaced.
func (v DateTime) WithFold(fold int) DateTime {
	v.Fold = fold
	return v
}

// Compare orders two dates: -1, 0 or +1.
func (d Date) Compare(o Date) int {
	if c := cmpInt(d.Year, o.Year); c != 0 {
		return c
	}
	if c := cmpInt(d.Month, o.Month); c != 0 {
		return c
	}
	return cmpInt(d.Day, o.Day)
}

// Compare orders two times of day. Fold does not participate.
func (t Time) Compare(o Time) int {
	if c := cmpInt(t.Hour, o.Hour); c != 0 {
		return c
	}
	if c := cmpInt(t.Minute, o.Minute); c != 0 {
		return c
	}
	if c := cmpInt(t.Second, o.Second); c != 0 {
		return c
	}
	return cmpInt(t.Micro, o.Micro)
}

// Compare orders two naive datetimes. Fold does not participate.
func (v DateTime) Compare(o DateTime) int {
	if c := v.Date().Compare(o.Date()); c != 0 {
		return c
	}
	return v.TimeOfDay().Compare(o.TimeOfDay())
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%06d", t.Hour, t.Minute, t.Second, t.Micro)
}

func (v DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%06d",
		v.Year, v.Month, v.Day, v.Hour, v.Minute, v.Second, v.Micro)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
