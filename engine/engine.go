// Package engine defines the contract between the temporal strategies and
// the randomness/shrink engine that drives them. The engine owns the byte
// stream, the bias toward small/central values and the shrinking algorithm;
// strategies only request bounded draws and report structure through the
// group markers. A minimal non-shrinking implementation backed by a PCG
// source is provided for standalone use and tests.
package engine

import (
	"errors"
	"hash/fnv"
)

// ErrInvalid is returned by a strategy after calling MarkInvalid: the draw
// did not produce a usable example and the engine should try different
// randomness. It is not a failure of the surrounding run.
var ErrInvalid = errors.New("draw marked invalid")

// Label identifies a structural group across draws of the same strategy.
type Label uint64

// LabelFromName derives a stable Label from a human-readable name.
func LabelFromName(name string) Label {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name)) // hash.Write never returns an error
	return Label(h.Sum64())
}

// Engine supplies bounded randomness and records draw structure.
//
// BoundedInt returns a value in [lo, hi]. Absent a forced value the result
// should statistically favor center; a forced value inside the range is
// returned exactly, consuming engine state as if it had been drawn.
//
// BeginGroup/EndGroup bracket the draws that make up one structural unit;
// EndGroup(true) tells the engine the enclosed draws carry no
// shrink-relevant structure. Strategies must produce the same bracket
// sequence for equivalent draws, forced or not, so replay stays aligned.
//
// MarkInvalid flags the current example as unusable (not failed) and
// NoteEvent attaches a non-fatal diagnostic to it.
type Engine interface {
	BoundedInt(lo, hi, center int64, forced *int64) int64
	Bits(n uint) uint64
	Boolean(p float64) bool
	BeginGroup(label Label)
	EndGroup(discard bool)
	MarkInvalid(reason string)
	NoteEvent(event string)
}
