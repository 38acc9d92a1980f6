// Package leapsec holds the fixed table of historical leap-second insertion
// instants. The table is a shipped heuristic for "dates near which official
// leap seconds were inserted", not an authoritative source: smeared clocks
// diverge from UTC for a full day around each entry, so values near an
// entry are disproportionately likely to expose clock-handling bugs.
package leapsec

import (
	"fmt"
	"sync"

	"github.com/mrsinham/chronoforge/value"
)

// SmearMicros is the half-width of the assumed 24-hour smear window
// centered on each leap second.
const SmearMicros = int64(12) * 3600 * 1000000

// Leap seconds were inserted at 23:59:59 UTC on June 30 or December 31.
type entry struct {
	year  int
	month int
}

// Insertion history through the end of 2016, after which no leap second has
// been scheduled.
var history = [...]entry{
	{1972, 6}, {1972, 12}, {1973, 12}, {1974, 12}, {1975, 12},
	{1976, 12}, {1977, 12}, {1978, 12}, {1979, 12}, {1981, 6},
	{1982, 6}, {1983, 6}, {1985, 6}, {1987, 12}, {1989, 12},
	{1990, 12}, {1992, 6}, {1993, 6}, {1994, 6}, {1995, 12},
	{1997, 6}, {1998, 12}, {2005, 12}, {2008, 12}, {2012, 6},
	{2015, 6}, {2016, 12},
}

var (
	once  sync.Once
	table []int64
)

func build() {
	table = make([]int64, 0, len(history))
	for _, e := range history {
		day := map[int]int{6: 30, 12: 31}[e.month]
		v := value.DateTime{
			Year: e.year, Month: e.month, Day: day,
			Hour: 23, Minute: 59, Second: 59,
		}
		table = append(table, v.AbsMicros())
	}
	if len(table) != 27 {
		panic(fmt.Sprintf("leapsec: expected 27 entries, got %d", len(table)))
	}
	for i := 1; i < len(table); i++ {
		if table[i] <= table[i-1] {
			panic("leapsec: table not strictly ascending")
		}
	}
}

// Table returns the leap-second instants as UTC microseconds since the Unix
// epoch, strictly ascending. The slice is shared; callers must not mutate
// it.
func Table() []int64 {
	once.Do(build)
	return table
}

// Near reports whether the UTC instant falls inside the smear window of any
// table entry.
func Near(utcMicros int64) bool {
	for _, leap := range Table() {
		d := utcMicros - leap
		if d < 0 {
			d = -d
		}
		if d < SmearMicros {
			return true
		}
	}
	return false
}

// WindowInside reports whether some entry's smear window lies strictly
// inside (lo, hi) with full margin on both sides.
func WindowInside(loMicros, hiMicros int64) bool {
	for _, leap := range Table() {
		if loMicros < leap-SmearMicros && leap+SmearMicros < hiMicros {
			return true
		}
	}
	return false
}
