package generic

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ANCHOR - Where in the rotation a subject's timeline starts
// =============================================================================

// Anchor fixes a subject's position in the rotation at a reference
// instant: which segment was running and how much of it had already
// elapsed. Created once per subject from an externally-resolved
// position (an ephemeris collaborator reduces a celestial longitude to
// the index/fraction pair); immutable afterward.
type Anchor struct {
	BirthInstant     time.Time
	StartIndex       int
	FractionConsumed decimal.Decimal // in [0, 1)
}

// NewAnchor validates and builds an anchor against a sequence.
func NewAnchor(birthInstant time.Time, startIndex int, fractionConsumed decimal.Decimal, seq *Sequence) (Anchor, error) {
	a := Anchor{
		BirthInstant:     birthInstant,
		StartIndex:       startIndex,
		FractionConsumed: fractionConsumed,
	}
	if err := a.Validate(seq); err != nil {
		return Anchor{}, err
	}
	return a, nil
}

// Validate checks the anchor's domain against a sequence. BuildTimeline
// calls this too, so anchors constructed directly are still checked.
func (a Anchor) Validate(seq *Sequence) error {
	if a.BirthInstant.IsZero() {
		return &InvalidAnchorError{Field: "birthInstant", Value: "zero"}
	}
	if a.StartIndex < 0 || a.StartIndex >= seq.Len() {
		return &InvalidAnchorError{Field: "startIndex", Value: fmt.Sprintf("%d (sequence has %d segments)", a.StartIndex, seq.Len())}
	}
	if a.FractionConsumed.IsNegative() || a.FractionConsumed.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return &InvalidAnchorError{Field: "fractionConsumed", Value: a.FractionConsumed.String()}
	}
	return nil
}
