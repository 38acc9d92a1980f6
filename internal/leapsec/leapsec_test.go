package leapsec

import (
	"testing"

	"github.com/mrsinham/chronoforge/value"
)

func TestTableShape(t *testing.T) {
	table := Table()
	if len(table) != 27 {
		t.Fatalf("table has %d entries, want 27", len(table))
	}
	for i, micros := range table {
		if i > 0 && micros <= table[i-1] {
			t.Errorf("entry %d out of order", i)
		}
		v, err := value.DateTimeFromAbsMicros(micros)
		if err != nil {
			t.Fatalf("entry %d: %v", i, err)
		}
		june := v.Month == 6 && v.Day == 30
		december := v.Month == 12 && v.Day == 31
		if !june && !december {
			t.Errorf("entry %d falls on %v, want June 30 or December 31", i, v)
		}
		if v.Hour != 23 || v.Minute != 59 || v.Second != 59 || v.Micro != 0 {
			t.Errorf("entry %d is at %v, want 23:59:59", i, v)
		}
	}
	first, _ := value.DateTimeFromAbsMicros(table[0])
	last, _ := value.DateTimeFromAbsMicros(table[len(table)-1])
	if first.Year != 1972 || last.Year != 2016 {
		t.Errorf("table spans %d..%d, want 1972..2016", first.Year, last.Year)
	}
}

func TestNear(t *testing.T) {
	leap := value.DateTime{Year: 2016, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59}.AbsMicros()
	if !Near(leap) {
		t.Error("the leap second itself must be near")
	}
	if !Near(leap + SmearMicros - 1) {
		t.Error("just inside the window must be near")
	}
	if Near(leap + SmearMicros) {
		t.Error("the window boundary is exclusive")
	}
	far := value.DateTime{Year: 2020, Month: 6, Day: 15}.AbsMicros()
	if Near(far) {
		t.Error("2020-06-15 is not near any leap second")
	}
}

func TestWindowInside(t *testing.T) {
	leap := value.DateTime{Year: 2012, Month: 6, Day: 30, Hour: 23, Minute: 59, Second: 59}.AbsMicros()
	lo := leap - SmearMicros - 1
	hi := leap + SmearMicros + 1
	if !WindowInside(lo, hi) {
		t.Error("window with margin on both sides must qualify")
	}
	if WindowInside(leap-SmearMicros, hi) {
		t.Error("window without lower margin must not qualify")
	}
	if WindowInside(leap+1, hi) {
		t.Error("interval starting inside the window must not qualify")
	}
}
