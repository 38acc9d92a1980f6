package nasty

import (
	"fmt"

	"github.com/mrsinham/chronoforge/engine"
	"github.com/mrsinham/chronoforge/internal/drawer"
	"github.com/mrsinham/chronoforge/tz"
	"github.com/mrsinham/chronoforge/value"
)

// naivePartLabel groups the draws that make up one naive datetime, so the
// shrink engine sees the same structure whether or not a search ran.
var naivePartLabel = engine.LabelFromName("draw naive part of a datetime")

// combine draws one capped naive datetime in [lo, hi] and attaches the
// zone. Failures (invalid composition, legacy localization overflow) are
// construction errors for the caller's retry policy.
func combine(e engine.Engine, zone tz.Zone, lo, hi value.DateTime, forced drawer.Forced) (tz.Zoned, error) {
	rec, err := drawer.Draw(e, drawer.KindDateTime, lo, hi, forced)
	if err != nil {
		return tz.Zoned{}, err
	}
	return tz.Attach(rec, zone)
}

// Search performs one aware-datetime draw between the naive bounds,
// attempting with probability 1/4 to land on a nasty instant.
//
// The ordinary draw happens first. If nastiness was not requested, the
// candidate is already nasty, or no structurally guaranteed sub-interval
// exists, that draw is kept as-is and the engine sees it as a plain draw.
// Otherwise the candidate's group is
// discarded and the bounds are bisected toward a guaranteed sub-interval
// until a drawn candidate classifies as nasty; the winning field values are
// then replayed through the original bounds as forced values, so the
// returned value carries ordinary draw structure and stays replay- and
// shrink-compatible.
//
// Construction failures abort the whole attempt; the caller retries.
func Search(e engine.Engine, zone tz.Zone, min, max value.DateTime) (tz.Zoned, error) {
	// The bounds take the zone without localization so the sampled naive
	// interval stays exactly [min, max]; a legacy zone's normalize step
	// could otherwise shift a bound sitting inside a gap. Only drawn
	// candidates go through the full attach sequence.
	loBound := tz.Zoned{Naive: min, Zone: zone}
	hiBound := tz.Zoned{Naive: max, Zone: zone}

	tryNasty := e.Bits(2) == 1

	e.BeginGroup(naivePartLabel)
	result, err := combine(e, zone, loBound.Naive, hiBound.Naive, nil)
	if err != nil {
		e.EndGroup(true)
		return tz.Zoned{}, err
	}
	lo, hi := Bounds(loBound, result, hiBound)
	if !tryNasty || IsNasty(result) || lo == nil {
		// Not being nasty, got lucky, or nothing guaranteed nearby.
		e.EndGroup(false)
		return result, nil
	}
	e.EndGroup(true)

	for !IsNasty(result) {
		e.BeginGroup(naivePartLabel)
		result, err = combine(e, zone, lo.Naive, hi.Naive, nil)
		if err != nil {
			e.EndGroup(true)
			return tz.Zoned{}, err
		}
		e.EndGroup(true)
		lo, hi = Bounds(*lo, result, *hi)
		if lo == nil {
			// The guarantee evaporated at this resolution; accept
			// the last candidate.
			break
		}
		if lo.Compare(*hi) > 0 {
			return tz.Zoned{}, fmt.Errorf("nasty search inverted bounds: %v > %v", lo, hi)
		}
	}

	e.BeginGroup(naivePartLabel)
	result, err = combine(e, zone, min, max, drawer.ForcedFromDateTime(result.Naive))
	if err != nil {
		e.EndGroup(true)
		return tz.Zoned{}, err
	}
	e.EndGroup(false)
	return result, nil
}
