package nasty

import (
	"testing"

	"github.com/mrsinham/chronoforge/engine"
	"github.com/mrsinham/chronoforge/tz"
	"github.com/mrsinham/chronoforge/value"
)

var (
	searchMin = value.DateTime{Year: 2000, Month: 1, Day: 1}
	searchMax = value.DateTime{Year: 2000, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, Micro: 999999}
)

func TestSearchStaysInBounds(t *testing.T) {
	z := forgeZone(t, tz.FoldAware)
	for seed := uint64(0); seed < 300; seed++ {
		e := engine.NewRandom(seed, seed)
		got, err := Search(e, z, searchMin, searchMax)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if got.Naive.Compare(searchMin) < 0 || got.Naive.Compare(searchMax) > 0 {
			t.Fatalf("seed %d: %v escaped bounds", seed, got.Naive)
		}
		if got.Zone == nil {
			t.Fatalf("seed %d: zone lost", seed)
		}
	}
}

func TestSearchFindsNastyInstants(t *testing.T) {
	z := forgeZone(t, tz.FoldAware)
	nastyCount := 0
	for seed := uint64(0); seed < 300; seed++ {
		e := engine.NewRandom(seed, seed)
		got, err := Search(e, z, searchMin, searchMax)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if IsNasty(got) {
			nastyCount++
		}
	}
	// The trigger fires one draw in four and the year 2000 bounds contain
	// both transitions of the fixture zone, so triggered searches succeed.
	// Untriggered draws land on a nasty instant only by luck.
	if nastyCount < 20 {
		t.Errorf("only %d of 300 searched draws were nasty", nastyCount)
	}
}

func TestSearchBalancesGroups(t *testing.T) {
	z := forgeZone(t, tz.FoldAware)
	for seed := uint64(0); seed < 100; seed++ {
		e := engine.NewRandom(seed, seed)
		if _, err := Search(e, z, searchMin, searchMax); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if e.GroupDepth() != 0 {
			t.Fatalf("seed %d: unbalanced groups, depth %d", seed, e.GroupDepth())
		}
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	z := forgeZone(t, tz.FoldAware)
	for seed := uint64(0); seed < 50; seed++ {
		a, err := Search(engine.NewRandom(seed, seed), z, searchMin, searchMax)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		b, err := Search(engine.NewRandom(seed, seed), z, searchMin, searchMax)
		if err != nil {
			t.Fatalf("seed %d replay: %v", seed, err)
		}
		if a.Naive != b.Naive {
			t.Fatalf("seed %d: %v then %v", seed, a.Naive, b.Naive)
		}
	}
}

func TestSearchWithoutTransitionsActsPlain(t *testing.T) {
	// A fixed zone over bounds containing no leap window offers no
	// structural guarantee; every draw takes the plain path.
	z := tz.Fixed("UTC+2", 7200)
	min := value.DateTime{Year: 2020, Month: 1, Day: 1}
	max := value.DateTime{Year: 2020, Month: 12, Day: 31}
	for seed := uint64(0); seed < 100; seed++ {
		e := engine.NewRandom(seed, seed)
		got, err := Search(e, z, min, max)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if got.Naive.Compare(min) < 0 || got.Naive.Compare(max) > 0 {
			t.Fatalf("seed %d: %v escaped bounds", seed, got.Naive)
		}
	}
}

func TestSearchCoversLeapSmearBounds(t *testing.T) {
	// Bounds around 2015-06-30 23:59:59 UTC: the only guarantee is the
	// leap window, so triggered searches must bisect into it.
	z := tz.UTC
	min := value.DateTime{Year: 2015, Month: 6, Day: 1}
	max := value.DateTime{Year: 2015, Month: 7, Day: 31}
	smeared := 0
	for seed := uint64(0); seed < 200; seed++ {
		e := engine.NewRandom(seed, seed)
		got, err := Search(e, z, min, max)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if InLeapSmear(got) {
			smeared++
		}
	}
	if smeared < 30 {
		t.Errorf("only %d of 200 draws hit the leap smear", smeared)
	}
}

func TestSearchLegacyBoundsAreNotNormalized(t *testing.T) {
	// Both bounds sit inside the legacy zone's spring-forward gap. The
	// sampled naive interval must stay exactly [min, max]: only the drawn
	// candidate goes through localize, landing one transition width to
	// either side of the gap depending on the is-DST hint. Normalizing the
	// bounds themselves would shift the whole interval past the gap and
	// one resolution direction could never appear.
	z := forgeZone(t, tz.LegacyTable)
	min := value.DateTime{Year: 2000, Month: 4, Day: 2, Hour: 2, Minute: 30}
	max := value.DateTime{Year: 2000, Month: 4, Day: 2, Hour: 2, Minute: 35}
	forwardSeen, backwardSeen := false, false
	for seed := uint64(0); seed < 100; seed++ {
		e := engine.NewRandom(seed, 3)
		got, err := Search(e, z, min, max)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		switch got.Naive.Hour {
		case 3:
			forwardSeen = true
		case 1:
			backwardSeen = true
		default:
			t.Fatalf("seed %d: %v was not localized out of the gap", seed, got.Naive)
		}
		if m := got.Naive.Minute; m < 30 || m > 35 {
			t.Fatalf("seed %d: minute %d escaped the sampled interval", seed, m)
		}
	}
	if !forwardSeen || !backwardSeen {
		t.Errorf("both localize directions should appear: forward=%v backward=%v", forwardSeen, backwardSeen)
	}
}
