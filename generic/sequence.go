/*
sequence.go - Cyclic weighted-segment catalogue

PURPOSE:
  A Sequence is the immutable configuration every other computation
  consumes: an ordered rotation of weighted segments whose weights sum
  to a declared cycle length (120 years for Vimshottari, 36 for Yogini).

KEY INSIGHT:
  All cyclic-index arithmetic lives HERE. The builder and the
  subdivision engine both advance through the rotation, and if each
  carried its own modulo arithmetic they could disagree off-by-one.
  Next() and IndexOf() are the only places indices wrap.

VALIDATION:
  Construction is all-or-nothing. A sequence whose weights do not sum
  to the declared cycle length, or that contains duplicate ids,
  non-positive weights, or no segments at all, is rejected with
  ErrInvalidSequence.

SEE ALSO:
  - builder.go: Walks the rotation from an anchor's start index
  - subdivide.go: Walks the rotation from a parent's own position
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// SEQUENCE - Immutable cyclic weighted-segment catalogue
// =============================================================================

// Sequence is a validated, ordered, cyclic list of weighted segments.
// Immutable for the process lifetime; share freely across goroutines.
type Sequence struct {
	segments   []Segment
	index      map[SegmentID]int
	cycleYears decimal.Decimal
}

// NewSequence validates and builds a sequence. cycleYears is the
// declared total the segment weights must sum to exactly.
func NewSequence(cycleYears decimal.Decimal, segments ...Segment) (*Sequence, error) {
	if len(segments) == 0 {
		return nil, &InvalidSequenceError{Reason: "no segments"}
	}
	if !cycleYears.IsPositive() {
		return nil, &InvalidSequenceError{Reason: "cycle length must be positive"}
	}

	index := make(map[SegmentID]int, len(segments))
	sum := decimal.Zero
	for i, seg := range segments {
		if seg.ID == "" {
			return nil, &InvalidSequenceError{Reason: "segment with empty id"}
		}
		if !seg.WeightYears.IsPositive() {
			return nil, &InvalidSequenceError{Reason: "segment " + string(seg.ID) + " has non-positive weight"}
		}
		if _, dup := index[seg.ID]; dup {
			return nil, &InvalidSequenceError{Reason: "duplicate segment id " + string(seg.ID)}
		}
		index[seg.ID] = i
		sum = sum.Add(seg.WeightYears)
	}

	if !sum.Equal(cycleYears) {
		return nil, &InvalidSequenceError{
			Reason:   "weights do not sum to declared cycle length",
			Declared: cycleYears,
			Actual:   sum,
		}
	}

	owned := make([]Segment, len(segments))
	copy(owned, segments)
	return &Sequence{segments: owned, index: index, cycleYears: cycleYears}, nil
}

// MustSequence is NewSequence for package-level presets; panics on
// invalid input.
func MustSequence(cycleYears decimal.Decimal, segments ...Segment) *Sequence {
	seq, err := NewSequence(cycleYears, segments...)
	if err != nil {
		panic(err)
	}
	return seq
}

// Len returns the number of segments in the rotation.
func (s *Sequence) Len() int { return len(s.segments) }

// At returns the segment at position i. Callers obtain i from IndexOf
// or Next, so i is always in range.
func (s *Sequence) At(i int) Segment { return s.segments[i] }

// Segments returns a copy of the rotation in order.
func (s *Sequence) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// IndexOf returns the position of a segment id in the rotation.
func (s *Sequence) IndexOf(id SegmentID) (int, error) {
	i, ok := s.index[id]
	if !ok {
		return 0, &SegmentNotFoundError{ID: id}
	}
	return i, nil
}

// Next returns the position after i, wrapping at the end of the
// rotation. The only modulo in the package.
func (s *Sequence) Next(i int) int {
	return (i + 1) % len(s.segments)
}

// Weight returns the weight in years of a segment id.
func (s *Sequence) Weight(id SegmentID) (decimal.Decimal, error) {
	i, err := s.IndexOf(id)
	if err != nil {
		return decimal.Zero, err
	}
	return s.segments[i].WeightYears, nil
}

// TotalCycleYears returns the declared cycle length, which equals the
// sum of all segment weights.
func (s *Sequence) TotalCycleYears() decimal.Decimal { return s.cycleYears }
