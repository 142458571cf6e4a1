/*
Package generic provides the core weighted-cycle timeline engine.

PURPOSE:
  This package contains domain-agnostic types and algorithms for
  partitioning a fixed span of time into proportionally-weighted,
  hierarchically-subdividable intervals. Whether the cycle is the
  120-year Vimshottari rotation, the 36-year Yogini rotation, or any
  custom weighted sequence, the same engine builds the timeline,
  subdivides intervals, and answers point-in-time queries.

KEY CONCEPTS IN THIS FILE (types.go):
  - Segment: One named, weighted entry in a cyclic sequence
  - Interval: A computed slice of the timeline at one nesting level
  - Timeline: An ordered, gap-free list of sibling intervals
  - Day-length constants shared by construction and display

DESIGN PRINCIPLES:
  1. Immutability: Sequences and anchors are never mutated after
     construction; intervals are freshly allocated on every call
  2. Precision: Uses decimal.Decimal so durations carry no
     floating-point drift between construction and display
  3. Determinism: Identical inputs always produce identical outputs;
     every function is pure and safe for concurrent callers
  4. One day-length convention: All year-to-day conversion goes through
     DaysPerYear, applied in exactly one place per computation

USAGE:
  seq, _ := generic.NewSequence(decimal.NewFromInt(120), segments...)
  anchor, _ := generic.NewAnchor(birth, startIndex, fraction)
  tl, _ := generic.BuildTimeline(anchor, seq, decimal.NewFromInt(120))
  active, _ := generic.FindActive(tl, time.Now())

SEE ALSO:
  - sequence.go: Cyclic sequence construction and index arithmetic
  - builder.go: Top-level timeline construction
  - subdivide.go: Proportional subdivision of one interval
  - query.go: Point-in-time lookup and lazy path resolution
*/
package generic

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DAY-LENGTH CONVENTION
// =============================================================================

// DaysPerYear is the single year-to-day conversion constant. Every
// duration in this package is derived from it; using any other
// constant would let construction and display drift apart.
var DaysPerYear = decimal.RequireFromString("365.25")

// DaysPerMonth is DaysPerYear / 12, used only by the display breakdown.
var DaysPerMonth = DaysPerYear.Div(decimal.NewFromInt(12))

// nanosPerDay converts a day count to time.Duration nanoseconds.
var nanosPerDay = decimal.NewFromInt(24 * 60 * 60 * 1_000_000_000)

// daysToDuration projects an exact day count onto time.Duration,
// rounding to the nearest nanosecond. Rounding happens here and
// nowhere else.
func daysToDuration(days decimal.Decimal) time.Duration {
	return time.Duration(days.Mul(nanosPerDay).Round(0).IntPart())
}

// =============================================================================
// SEGMENT - One weighted entry in a cyclic sequence
// =============================================================================

type SegmentID string

// Segment is a named, weighted period definition. Weights are expressed
// in years and must be positive; the sum of all weights in a sequence
// equals the sequence's declared cycle length.
type Segment struct {
	ID          SegmentID
	WeightYears decimal.Decimal
}

// NewSegment builds a segment from a float weight. Weights in practice
// are small integers or simple fractions, which NewFromFloat represents
// exactly.
func NewSegment(id string, weightYears float64) Segment {
	return Segment{ID: SegmentID(id), WeightYears: decimal.NewFromFloat(weightYears)}
}

// =============================================================================
// INTERVAL - A computed slice of the timeline
// =============================================================================

// Interval is one slice of a timeline at a single nesting level.
// Intervals are computed, never persisted, and immutable once returned.
//
// End - Start equals DurationDays under the DaysPerYear convention,
// to nanosecond rounding.
type Interval struct {
	SegmentID    SegmentID
	Start        time.Time
	End          time.Time
	DurationDays decimal.Decimal
	Level        int
	ParentID     SegmentID // empty at level 0
}

// Contains reports whether instant falls inside the interval using the
// closed-closed convention shared with FindActive.
func (iv Interval) Contains(instant time.Time) bool {
	return !instant.Before(iv.Start) && !instant.After(iv.End)
}

// Duration returns the interval length as a time.Duration.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// =============================================================================
// TIMELINE - Ordered sibling intervals at one level
// =============================================================================

// Timeline is an ordered list of sibling intervals at one nesting
// level. Builders guarantee contiguity: tl[i].End == tl[i+1].Start,
// with no gaps and no overlaps.
type Timeline []Interval

// Span returns the covered range [first.Start, last.End].
func (tl Timeline) Span() (start, end time.Time) {
	if len(tl) == 0 {
		return time.Time{}, time.Time{}
	}
	return tl[0].Start, tl[len(tl)-1].End
}

// TotalDays sums the durations of all intervals.
func (tl Timeline) TotalDays() decimal.Decimal {
	total := decimal.Zero
	for _, iv := range tl {
		total = total.Add(iv.DurationDays)
	}
	return total
}

// Contiguous reports whether every interval starts exactly where the
// previous one ended. Builders always produce contiguous timelines;
// this exists so callers and tests can assert it.
func (tl Timeline) Contiguous() bool {
	for i := 0; i+1 < len(tl); i++ {
		if !tl[i].End.Equal(tl[i+1].Start) {
			return false
		}
	}
	return true
}
