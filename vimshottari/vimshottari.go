/*
Package vimshottari binds the generic timeline engine to the
Vimshottari system: the nine-lord, 120-year rotation.

PURPOSE:
  The generic engine knows nothing about planets. This package supplies
  the canonical planetary sequence, the nakshatra arithmetic that turns
  a sidereal Moon longitude into an engine anchor, and convenience
  wrappers bound to the canonical configuration.

THE ROTATION:
  Ketu 7, Venus 20, Sun 6, Moon 10, Mars 7, Rahu 18, Jupiter 16,
  Saturn 19, Mercury 17 - summing to the 120-year cycle. The order is
  fixed by the nakshatra lordship scheme: Ashwini (the first nakshatra)
  is ruled by Ketu, and lordship repeats every nine nakshatras.

WHAT THIS PACKAGE DOES NOT DO:
  No astronomy. Callers obtain the sidereal Moon longitude from their
  own ephemeris; AnchorFromMoonLongitude only performs the fixed
  arc-length reduction from that longitude to a (segment, fraction)
  pair.

SEE ALSO:
  - generic/: The engine this package configures
  - yogini/: The eight-segment, 36-year sibling system
*/
package vimshottari

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/dasha-engine/generic"
)

// =============================================================================
// CANONICAL CONFIGURATION
// =============================================================================

const (
	// CycleYears is the full Vimshottari rotation length.
	CycleYears = 120

	// SpanYears is the default timeline span: one full cycle from birth.
	SpanYears = 120

	// Nakshatras is the number of lunar mansions the zodiac divides into.
	Nakshatras = 27
)

// sequence is the package-level validated rotation. MustSequence is
// safe here: the weights are compile-time constants summing to 120.
var sequence = generic.MustSequence(decimal.NewFromInt(CycleYears),
	generic.NewSegment("Ketu", 7),
	generic.NewSegment("Venus", 20),
	generic.NewSegment("Sun", 6),
	generic.NewSegment("Moon", 10),
	generic.NewSegment("Mars", 7),
	generic.NewSegment("Rahu", 18),
	generic.NewSegment("Jupiter", 16),
	generic.NewSegment("Saturn", 19),
	generic.NewSegment("Mercury", 17),
)

// Sequence returns the canonical nine-lord rotation. The sequence is
// immutable and shared; callers must not assume otherwise.
func Sequence() *generic.Sequence { return sequence }

// =============================================================================
// CONVENIENCE WRAPPERS - Bound to the canonical configuration
// =============================================================================

// BuildTimeline builds the 120-year Mahadasha timeline for an anchor.
func BuildTimeline(anchor generic.Anchor) (generic.Timeline, error) {
	return generic.BuildTimeline(anchor, sequence, decimal.NewFromInt(SpanYears))
}

// Subdivide splits a Mahadasha into its nine Antardashas (or an
// Antardasha into Pratyantardashas, and so on).
func Subdivide(parent generic.Interval) (generic.Timeline, error) {
	return generic.Subdivide(parent, sequence)
}

// FindActivePath resolves the running period at each nesting level:
// depth 1 yields Mahadasha and Antardasha, depth 2 adds the
// Pratyantardasha.
func FindActivePath(anchor generic.Anchor, instant time.Time, depth int) ([]generic.Interval, error) {
	return generic.FindActivePath(anchor, sequence, decimal.NewFromInt(SpanYears), instant, depth)
}

// BuildFullTree eagerly materializes the whole period tree to depth
// levels, for table-style display.
func BuildFullTree(anchor generic.Anchor, depth int) ([]*generic.TreeNode, error) {
	return generic.BuildFullTree(anchor, sequence, decimal.NewFromInt(SpanYears), depth)
}
