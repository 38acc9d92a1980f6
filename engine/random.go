package engine

import (
	"fmt"
	"hash/fnv"
	randv2 "math/rand/v2"
)

// One in four unforced bounded draws returns the center value, which keeps
// output biased toward legible values the way a shrinking engine would.
const centerWeight = 4

// Random is the reference Engine: deterministic PCG-backed randomness with
// no shrinking. The same seed always replays the same draw sequence.
type Random struct {
	rng     *randv2.Rand
	draws   int
	depth   int
	invalid bool
	reason  string
	events  []string
}

// NewRandom returns a Random seeded with the given pair.
func NewRandom(seed1, seed2 uint64) *Random {
	return &Random{rng: randv2.New(randv2.NewPCG(seed1, seed2))}
}

// NewRandomFromName returns a Random deterministically seeded from a name,
// so the same name always reproduces the same sequence.
func NewRandomFromName(name string) *Random {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name)) // hash.Write never returns an error
	seed := h.Sum64()
	return NewRandom(seed, seed)
}

// BoundedInt implements Engine.
func (r *Random) BoundedInt(lo, hi, center int64, forced *int64) int64 {
	if lo > hi {
		panic(fmt.Sprintf("engine: BoundedInt bounds inverted: [%d, %d]", lo, hi))
	}
	r.draws++
	if forced != nil {
		if *forced < lo || *forced > hi {
			panic(fmt.Sprintf("engine: forced value %d outside [%d, %d]", *forced, lo, hi))
		}
		return *forced
	}
	if lo == hi {
		return lo
	}
	if center >= lo && center <= hi && r.rng.IntN(centerWeight) == 0 {
		return center
	}
	return lo + r.rng.Int64N(hi-lo+1)
}

// Bits implements Engine.
func (r *Random) Bits(n uint) uint64 {
	r.draws++
	if n == 0 {
		return 0
	}
	if n >= 64 {
		return r.rng.Uint64()
	}
	return r.rng.Uint64() >> (64 - n)
}

// Boolean implements Engine.
func (r *Random) Boolean(p float64) bool {
	r.draws++
	return r.rng.Float64() < p
}

// BeginGroup implements Engine. The reference engine keeps only the nesting
// depth; a shrinking engine would record the label and span.
func (r *Random) BeginGroup(Label) {
	r.depth++
}

// EndGroup implements Engine.
func (r *Random) EndGroup(bool) {
	if r.depth == 0 {
		panic("engine: EndGroup without matching BeginGroup")
	}
	r.depth--
}

// MarkInvalid implements Engine.
func (r *Random) MarkInvalid(reason string) {
	r.invalid = true
	r.reason = reason
}

// NoteEvent implements Engine.
func (r *Random) NoteEvent(event string) {
	r.events = append(r.events, event)
}

// Draws returns how many randomness requests have been made.
func (r *Random) Draws() int { return r.draws }

// Invalid reports whether MarkInvalid has been called, with its reason.
func (r *Random) Invalid() (bool, string) { return r.invalid, r.reason }

// Events returns the diagnostics noted so far.
func (r *Random) Events() []string { return r.events }

// GroupDepth returns the current group nesting depth; zero after any
// complete draw.
func (r *Random) GroupDepth() int { return r.depth }
