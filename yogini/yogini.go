/*
Package yogini binds the generic timeline engine to the Yogini system:
eight segments over a 36-year cycle.

PURPOSE:
  Demonstrates that the engine generalizes beyond the nine-lord
  Vimshottari configuration. The same builder, subdivision, and query
  code runs an entirely different rotation - different segment count,
  different cycle length, different anchor arithmetic - with only this
  thin configuration layer changing.

KEY DIFFERENCES FROM VIMSHOTTARI:
  1. Eight segments with weights 1..8 years, cycle 36
  2. The starting segment derives from the nakshatra NUMBER shifted by
     three, not from a lordship table repeating every nine mansions
  3. A default span of three full cycles (108 years) rather than one

SEE ALSO:
  - vimshottari/: The canonical nine-lord configuration
  - generic/: The shared engine
*/
package yogini

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/dasha-engine/generic"
)

// =============================================================================
// CANONICAL CONFIGURATION
// =============================================================================

const (
	// CycleYears is the full Yogini rotation length.
	CycleYears = 36

	// SpanYears is the default timeline span: three full cycles, enough
	// to cover a lifetime the way one Vimshottari cycle does.
	SpanYears = 108

	nakshatras   = 27
	nakshatraArc = 360.0 / nakshatras
)

var sequence = generic.MustSequence(decimal.NewFromInt(CycleYears),
	generic.NewSegment("Mangala", 1),
	generic.NewSegment("Pingala", 2),
	generic.NewSegment("Dhanya", 3),
	generic.NewSegment("Bhramari", 4),
	generic.NewSegment("Bhadrika", 5),
	generic.NewSegment("Ulka", 6),
	generic.NewSegment("Siddha", 7),
	generic.NewSegment("Sankata", 8),
)

// Sequence returns the eight-segment Yogini rotation.
func Sequence() *generic.Sequence { return sequence }

// =============================================================================
// ANCHOR DERIVATION
// =============================================================================

// AnchorFromMoonLongitude reduces a sidereal Moon longitude to a Yogini
// anchor. The starting yogini is (nakshatra number + 3) mod 8 with
// nakshatra numbers counted from one, and the fraction consumed is the
// traversed share of the mansion's arc.
func AnchorFromMoonLongitude(birth time.Time, moonLongitude float64) (generic.Anchor, error) {
	if math.IsNaN(moonLongitude) || math.IsInf(moonLongitude, 0) {
		return generic.Anchor{}, &generic.InvalidAnchorError{Field: "moonLongitude", Value: "not a finite number"}
	}

	lon := math.Mod(moonLongitude, 360)
	if lon < 0 {
		lon += 360
	}

	nak := int(lon / nakshatraArc)
	if nak >= nakshatras {
		nak = nakshatras - 1
	}

	// 1-based nakshatra number, shifted by three; remainder zero means
	// the eighth yogini.
	r := (nak + 1 + 3) % sequence.Len()
	if r == 0 {
		r = sequence.Len()
	}
	startIndex := r - 1

	consumed := (lon - float64(nak)*nakshatraArc) / nakshatraArc
	if consumed >= 1 {
		consumed = math.Nextafter(1, 0)
	}
	if consumed < 0 {
		consumed = 0
	}

	return generic.NewAnchor(birth, startIndex, decimal.NewFromFloat(consumed), sequence)
}

// =============================================================================
// CONVENIENCE WRAPPERS
// =============================================================================

// BuildTimeline builds the default 108-year Yogini timeline.
func BuildTimeline(anchor generic.Anchor) (generic.Timeline, error) {
	return generic.BuildTimeline(anchor, sequence, decimal.NewFromInt(SpanYears))
}

// Subdivide splits one Yogini period into its eight sub-periods.
func Subdivide(parent generic.Interval) (generic.Timeline, error) {
	return generic.Subdivide(parent, sequence)
}

// FindActivePath resolves the running period at each nesting level.
func FindActivePath(anchor generic.Anchor, instant time.Time, depth int) ([]generic.Interval, error) {
	return generic.FindActivePath(anchor, sequence, decimal.NewFromInt(SpanYears), instant, depth)
}
