// Package drawer implements the bound-aware, field-by-field draw shared by
// every temporal strategy. Fields are drawn in calendar order under two
// capping flags: as long as every field so far sits exactly on the lower
// (upper) bound, the next field is clamped to that bound's field; once a
// field diverges, all later fields range over their full domain, because
// any combination is then strictly inside the interval.
package drawer

import (
	"github.com/mrsinham/chronoforge/engine"
	"github.com/mrsinham/chronoforge/value"
)

// Kind selects which field list is drawn.
type Kind int

const (
	KindDate Kind = iota
	KindTime
	KindDateTime
)

// Field names a drawable calendar field.
type Field string

const (
	FieldYear   Field = "year"
	FieldMonth  Field = "month"
	FieldDay    Field = "day"
	FieldHour   Field = "hour"
	FieldMinute Field = "minute"
	FieldSecond Field = "second"
	FieldMicro  Field = "microsecond"
)

// Forced maps fields to caller-imposed values, used to replay a previously
// produced combination through the same draw sequence.
type Forced map[Field]int64

// ForcedFromDateTime builds the full override map for a datetime's calendar
// fields. Fold is never forced; it is drawn outside the capping logic.
func ForcedFromDateTime(v value.DateTime) Forced {
	return Forced{
		FieldYear:   int64(v.Year),
		FieldMonth:  int64(v.Month),
		FieldDay:    int64(v.Day),
		FieldHour:   int64(v.Hour),
		FieldMinute: int64(v.Minute),
		FieldSecond: int64(v.Second),
		FieldMicro:  int64(v.Micro),
	}
}

// desc describes one field: its absolute domain and how to read it from a
// bound and write it into the result record.
type desc struct {
	name     Field
	min, max int64
	get      func(v value.DateTime) int64
	set      func(v *value.DateTime, x int64)
}

var dateFields = []desc{
	{FieldYear, value.MinYear, value.MaxYear,
		func(v value.DateTime) int64 { return int64(v.Year) },
		func(v *value.DateTime, x int64) { v.Year = int(x) }},
	{FieldMonth, 1, value.MaxMonth,
		func(v value.DateTime) int64 { return int64(v.Month) },
		func(v *value.DateTime, x int64) { v.Month = int(x) }},
	{FieldDay, 1, value.MaxDay,
		func(v value.DateTime) int64 { return int64(v.Day) },
		func(v *value.DateTime, x int64) { v.Day = int(x) }},
}

var timeFields = []desc{
	{FieldHour, 0, value.MaxHour,
		func(v value.DateTime) int64 { return int64(v.Hour) },
		func(v *value.DateTime, x int64) { v.Hour = int(x) }},
	{FieldMinute, 0, value.MaxMin,
		func(v value.DateTime) int64 { return int64(v.Minute) },
		func(v *value.DateTime, x int64) { v.Minute = int(x) }},
	{FieldSecond, 0, value.MaxSec,
		func(v value.DateTime) int64 { return int64(v.Second) },
		func(v *value.DateTime, x int64) { v.Second = int(x) }},
	{FieldMicro, 0, value.MaxMicro,
		func(v value.DateTime) int64 { return int64(v.Micro) },
		func(v *value.DateTime, x int64) { v.Micro = int(x) }},
}

// yearCenter is the canonical shrink target for year fields.
const yearCenter = 2000

func fieldsFor(kind Kind) []desc {
	switch kind {
	case KindDate:
		return dateFields
	case KindTime:
		return timeFields
	}
	return append(append([]desc(nil), dateFields...), timeFields...)
}

// Draw produces one value in [lo, hi] for the kind's fields, with optional
// per-field forced overrides. lo and hi must be the same kind and ordered;
// for time kinds their date fields are ignored. Kinds that carry fold draw
// it last as an unbiased bit, outside the capping state. The composed value
// is validated; a failed composition is returned as an error for the caller
// to retry or invalidate.
func Draw(e engine.Engine, kind Kind, lo, hi value.DateTime, forced Forced) (value.DateTime, error) {
	r := value.DateTime{Year: value.MinYear, Month: 1, Day: 1}
	capLow, capHigh := true, true
	for _, f := range fieldsFor(kind) {
		low, high := f.min, f.max
		if capLow {
			low = f.get(lo)
		}
		if capHigh {
			high = f.get(hi)
		} else if f.name == FieldDay {
			// A free-ranging day must still exist in the already
			// drawn month.
			high = int64(value.DaysInMonth(r.Year, r.Month))
		}
		center := low
		if f.name == FieldYear {
			center = yearCenter
		}
		var force *int64
		if x, ok := forced[f.name]; ok {
			force = &x
		}
		val := e.BoundedInt(low, high, center, force)
		f.set(&r, val)
		capLow = capLow && val == low
		capHigh = capHigh && val == high
	}
	if kind != KindDate {
		r.Fold = int(e.Bits(1))
	}
	return value.NewDateTime(r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second, r.Micro, r.Fold)
}
