package nasty

import (
	"testing"

	"github.com/mrsinham/chronoforge/engine"
	"github.com/mrsinham/chronoforge/internal/drawer"
	"github.com/mrsinham/chronoforge/tz"
	"github.com/mrsinham/chronoforge/value"
)

// forgeZone has a spring-forward gap at 2000-04-02 02:00 local and a
// fall-back overlap at 2000-10-29 01:00-02:00 local.
func forgeZone(t *testing.T, kind tz.Kind) *tz.Table {
	t.Helper()
	springAt := value.DateTime{Year: 2000, Month: 4, Day: 2, Hour: 2}.AbsMicros()
	fallAt := value.DateTime{Year: 2000, Month: 10, Day: 29, Hour: 1}.AbsMicros()
	z, err := tz.NewTable("Forge/Test", kind, []tz.Transition{
		{Offset: 0, Abbrev: "FST"},
		{At: springAt, Offset: 3600, DST: 3600, Abbrev: "FDT"},
		{At: fallAt, Offset: 0, Abbrev: "FST"},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return z
}

func zoned(naive value.DateTime, z tz.Zone) tz.Zoned {
	return tz.Zoned{Naive: naive, Zone: z}
}

func TestDoesNotExist(t *testing.T) {
	z := forgeZone(t, tz.FoldAware)
	inGap := value.DateTime{Year: 2000, Month: 4, Day: 2, Hour: 2, Minute: 30}
	if !DoesNotExist(zoned(inGap, z)) {
		t.Error("a local time inside the gap must not exist")
	}
	plain := value.DateTime{Year: 2000, Month: 7, Day: 1, Hour: 12}
	if DoesNotExist(zoned(plain, z)) {
		t.Error("an ordinary local time exists")
	}
	if DoesNotExist(tz.Zoned{Naive: inGap}) {
		t.Error("naive values always exist")
	}
}

func TestDoesNotExistOnOverflow(t *testing.T) {
	// A transition just before the representable edge makes the round
	// trip overflow, which counts as nonexistent.
	at := value.MaxDateTime.AbsMicros() - 1800*1000000
	z, err := tz.NewTable("Forge/Edge", tz.FoldAware, []tz.Transition{
		{Offset: 0, Abbrev: "EST"},
		{At: at, Offset: 3600, DST: 3600, Abbrev: "EDT"},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if !DoesNotExist(zoned(value.MaxDateTime, z)) {
		t.Error("overflow at the representable edge must classify as nonexistent")
	}
}

func TestIsAmbiguous(t *testing.T) {
	z := forgeZone(t, tz.FoldAware)
	inOverlap := value.DateTime{Year: 2000, Month: 10, Day: 29, Hour: 1, Minute: 30}
	if !IsAmbiguous(zoned(inOverlap, z)) {
		t.Error("a local time inside the overlap is ambiguous")
	}
	plain := value.DateTime{Year: 2000, Month: 7, Day: 1, Hour: 12}
	if IsAmbiguous(zoned(plain, z)) {
		t.Error("an ordinary local time is unambiguous")
	}

	legacy := forgeZone(t, tz.LegacyTable)
	if IsAmbiguous(zoned(inOverlap, legacy)) {
		t.Error("zones without fold support are never ambiguous")
	}
}

func TestAmbiguityMatchesFoldDivergence(t *testing.T) {
	z := forgeZone(t, tz.FoldAware)
	probe := func(naive value.DateTime) bool {
		f0, err0 := z.Localize(naive, 0)
		f1, err1 := z.Localize(naive, 1)
		if err0 != nil || err1 != nil {
			t.Fatalf("localize: %v, %v", err0, err1)
		}
		return f0.UTCMicros() != f1.UTCMicros()
	}
	for hour := 0; hour < 24; hour++ {
		naive := value.DateTime{Year: 2000, Month: 10, Day: 29, Hour: hour, Minute: 15}
		if got, want := IsAmbiguous(zoned(naive, z)), probe(naive); got != want {
			t.Errorf("hour %d: IsAmbiguous = %v, fold divergence = %v", hour, got, want)
		}
	}
}

func TestInLeapSmear(t *testing.T) {
	leap := value.DateTime{Year: 2015, Month: 6, Day: 30, Hour: 23, Minute: 59, Second: 59}
	if !InLeapSmear(zoned(leap, tz.UTC)) {
		t.Error("the leap second itself is inside the smear")
	}
	far := value.DateTime{Year: 2015, Month: 3, Day: 1}
	if InLeapSmear(zoned(far, tz.UTC)) {
		t.Error("2015-03-01 is not near a leap second")
	}
}

func TestForcedLeapFieldsClassifyAsSmeared(t *testing.T) {
	forced := drawer.ForcedFromDateTime(value.DateTime{
		Year: 2015, Month: 6, Day: 30, Hour: 23, Minute: 59, Second: 59,
	})
	e := engine.NewRandom(11, 11)
	rec, err := drawer.Draw(e, drawer.KindDateTime, value.MinDateTime, value.MaxDateTime, forced)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	z, err := tz.Attach(rec, tz.UTC)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if !InLeapSmear(z) {
		t.Errorf("forced leap-second fields %v must classify as leap-adjacent", rec)
	}
}

func TestBoundsQualifiesAcrossTransition(t *testing.T) {
	z := forgeZone(t, tz.FoldAware)
	lo := zoned(value.DateTime{Year: 2000, Month: 3, Day: 1}, z)
	mid := zoned(value.DateTime{Year: 2000, Month: 3, Day: 20}, z)
	hi := zoned(value.DateTime{Year: 2000, Month: 5, Day: 1}, z)
	// Only (mid, hi) straddles the April transition.
	gotLo, gotHi := Bounds(lo, mid, hi)
	if gotLo == nil {
		t.Fatal("expected a qualifying sub-interval")
	}
	if gotLo.Naive.Compare(mid.Naive) != 0 || gotHi.Naive.Compare(hi.Naive) != 0 {
		t.Errorf("Bounds chose (%v, %v)", gotLo.Naive, gotHi.Naive)
	}
}

func TestBoundsPrefersCenterHalf(t *testing.T) {
	// Both halves straddle a transition; mid is after 2000-01-01, so the
	// earlier half, the one spanning the canonical center, must win.
	springAt := value.DateTime{Year: 1999, Month: 4, Day: 4, Hour: 2}.AbsMicros()
	fallAt := value.DateTime{Year: 2000, Month: 10, Day: 29, Hour: 1}.AbsMicros()
	z, err := tz.NewTable("Forge/Two", tz.FoldAware, []tz.Transition{
		{Offset: 0, Abbrev: "FST"},
		{At: springAt, Offset: 3600, DST: 3600, Abbrev: "FDT"},
		{At: fallAt, Offset: 0, Abbrev: "FST"},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	lo := zoned(value.DateTime{Year: 1999, Month: 1, Day: 1}, z)
	mid := zoned(value.DateTime{Year: 2000, Month: 6, Day: 1}, z)
	hi := zoned(value.DateTime{Year: 2001, Month: 1, Day: 1}, z)
	gotLo, gotHi := Bounds(lo, mid, hi)
	if gotLo == nil {
		t.Fatal("expected a qualifying sub-interval")
	}
	if gotLo.Naive.Compare(lo.Naive) != 0 || gotHi.Naive.Compare(mid.Naive) != 0 {
		t.Errorf("Bounds chose (%v, %v), want the half containing 2000-01-01", gotLo.Naive, gotHi.Naive)
	}
}

func TestBoundsNoGuarantee(t *testing.T) {
	z := tz.Fixed("UTC+1", 3600)
	lo := zoned(value.DateTime{Year: 2020, Month: 1, Day: 1}, z)
	mid := zoned(value.DateTime{Year: 2020, Month: 6, Day: 1}, z)
	hi := zoned(value.DateTime{Year: 2020, Month: 12, Day: 31}, z)
	if gotLo, gotHi := Bounds(lo, mid, hi); gotLo != nil || gotHi != nil {
		t.Error("a fixed zone with no leap window inside cannot qualify")
	}
}
