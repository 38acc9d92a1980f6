package tz

import (
	"fmt"
	"sort"

	"github.com/mrsinham/chronoforge/value"
)

// Transition is one row of an offset table: from At (UTC microseconds since
// the Unix epoch) onward the zone observes Offset seconds east of UTC, of
// which DST seconds are the daylight-saving component. The first row's At is
// ignored; it covers all earlier instants.
type Transition struct {
	At     int64
	Offset int64
	DST    int64
	Abbrev string
}

// Table is a Zone backed by an explicit transition list. It serves as the
// legacy offset-table variant but can also be built fold-aware, which makes
// it a convenient fixture for zones with known gaps and overlaps.
type Table struct {
	name  string
	kind  Kind
	spans []Transition
}

// NewTable validates the transition list and returns the zone.
func NewTable(name string, kind Kind, spans []Transition) (*Table, error) {
	if len(spans) == 0 {
		return nil, fmt.Errorf("zone %q: transition table must not be empty", name)
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].At <= spans[i-1].At {
			return nil, fmt.Errorf("zone %q: transitions not strictly ascending at index %d", name, i)
		}
	}
	return &Table{name: name, kind: kind, spans: spans}, nil
}

// Fixed returns a fold-aware zone with a constant offset (seconds east of
// UTC).
func Fixed(name string, offsetSeconds int64) *Table {
	t, _ := NewTable(name, FoldAware, []Transition{{Offset: offsetSeconds, Abbrev: name}})
	return t
}

// UTC is the zero-offset zone.
var UTC = Fixed("UTC", 0)

// Kind implements Zone.
func (t *Table) Kind() Kind { return t.kind }

// spanAtUTC returns the transition row in effect at an absolute instant.
func (t *Table) spanAtUTC(utcMicros int64) Transition {
	i := sort.Search(len(t.spans), func(i int) bool { return t.spans[i].At > utcMicros })
	if i == 0 {
		return t.spans[0]
	}
	return t.spans[i-1]
}

func (t *Table) offsetAtUTC(utcSec int64) int64 {
	return t.spanAtUTC(utcSec * 1000000).Offset
}

func (t *Table) offsetsForLocal(local value.DateTime) (early, late int64, valid int) {
	localSec := floorDivInt64(local.AbsMicros(), 1000000)
	early = t.offsetAtUTC(localSec - 86400)
	late = t.offsetAtUTC(localSec + 86400)
	validEarly := t.offsetAtUTC(localSec-early) == early
	validLate := t.offsetAtUTC(localSec-late) == late
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

// offsetFor resolves the offset for a local instant. Fold-aware tables honor
// fold; legacy tables always answer with the pre-transition offset.
func (t *Table) offsetFor(local value.DateTime, fold int) int64 {
	early, late, _ := t.offsetsForLocal(local)
	if t.kind == LegacyTable || fold == 0 {
		return early
	}
	return late
}

// UTCOffset implements Zone.
func (t *Table) UTCOffset(local value.DateTime) value.Delta {
	return value.DeltaFromMicros(t.offsetFor(local, local.Fold) * 1000000)
}

// DSTOffset implements Zone.
func (t *Table) DSTOffset(local value.DateTime) value.Delta {
	off := t.offsetFor(local, local.Fold)
	span := t.spanAtUTC(local.AbsMicros() - off*1000000)
	return value.DeltaFromMicros(span.DST * 1000000)
}

// Name implements Zone.
func (t *Table) Name(local value.DateTime) string {
	off := t.offsetFor(local, local.Fold)
	span := t.spanAtUTC(local.AbsMicros() - off*1000000)
	if span.Abbrev != "" {
		return span.Abbrev
	}
	return t.name
}

// Localize implements Zone. Fold-aware tables attach directly. Legacy
// tables follow the old localize-then-normalize sequence: the fold argument
// degrades to an is-DST hint (fold 0 means prefer the DST side, matching
// how pre-fold libraries were driven), the hinted offset is applied, and
// the naive fields are renormalized through UTC, which shifts instants the
// table cannot represent as given. Renormalization can overflow at the
// representable edge.
func (t *Table) Localize(naive value.DateTime, fold int) (Zoned, error) {
	if t.kind == FoldAware {
		return Zoned{Naive: naive.WithFold(fold), Zone: t}, nil
	}
	isDST := fold == 0
	early, late, valid := t.offsetsForLocal(naive)
	chosen := early
	if valid != 1 && t.dstAt(naive, late) == isDST && t.dstAt(naive, early) != isDST {
		chosen = late
	}
	utc := naive.AbsMicros() - chosen*1000000
	real := t.spanAtUTC(utc).Offset
	adjusted, err := value.DateTimeFromAbsMicros(utc + real*1000000)
	if err != nil {
		return Zoned{}, fmt.Errorf("localize %v in %s: %w", naive, t.name, err)
	}
	return Zoned{Naive: adjusted, Zone: t}, nil
}

// dstAt reports whether applying the given offset to the local instant
// lands in a span with a daylight-saving component.
func (t *Table) dstAt(local value.DateTime, offset int64) bool {
	return t.spanAtUTC(local.AbsMicros()-offset*1000000).DST != 0
}

// FromUTC implements Zone.
func (t *Table) FromUTC(utcMicros int64) (value.DateTime, error) {
	off := t.spanAtUTC(utcMicros).Offset
	return value.DateTimeFromAbsMicros(utcMicros + off*1000000)
}
