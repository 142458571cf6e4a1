package generic_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/dasha-engine/generic"
)

// =============================================================================
// SEQUENCE CONSTRUCTION
// =============================================================================

func TestNewSequence_RejectsEmpty(t *testing.T) {
	_, err := generic.NewSequence(decimal.NewFromInt(120))
	if !errors.Is(err, generic.ErrInvalidSequence) {
		t.Errorf("expected ErrInvalidSequence, got: %v", err)
	}
}

func TestNewSequence_RejectsNonPositiveWeight(t *testing.T) {
	_, err := generic.NewSequence(decimal.NewFromInt(10),
		generic.NewSegment("A", 10),
		generic.NewSegment("B", 0),
	)
	if !errors.Is(err, generic.ErrInvalidSequence) {
		t.Errorf("expected ErrInvalidSequence, got: %v", err)
	}
}

func TestNewSequence_RejectsDuplicateIDs(t *testing.T) {
	_, err := generic.NewSequence(decimal.NewFromInt(10),
		generic.NewSegment("A", 5),
		generic.NewSegment("A", 5),
	)
	if !errors.Is(err, generic.ErrInvalidSequence) {
		t.Errorf("expected ErrInvalidSequence, got: %v", err)
	}
}

func TestNewSequence_RejectsNonPositiveCycle(t *testing.T) {
	_, err := generic.NewSequence(decimal.Zero, generic.NewSegment("A", 5))
	if !errors.Is(err, generic.ErrInvalidSequence) {
		t.Errorf("expected ErrInvalidSequence, got: %v", err)
	}
}

func TestSequence_IndexOfUnknownSegment(t *testing.T) {
	seq := newNineLordSequence(t)

	_, err := seq.IndexOf("Pluto")
	if !errors.Is(err, generic.ErrSegmentNotFound) {
		t.Errorf("expected ErrSegmentNotFound, got: %v", err)
	}
	if !generic.IsNotFound(err) {
		t.Error("IsNotFound should report segment lookup failures")
	}

	var nf *generic.SegmentNotFoundError
	if !errors.As(err, &nf) {
		t.Fatal("expected a SegmentNotFoundError")
	}
	if nf.ID != "Pluto" {
		t.Errorf("error should carry the missing id, got %q", nf.ID)
	}
}

func TestSequence_WeightLookup(t *testing.T) {
	seq := newNineLordSequence(t)

	w, err := seq.Weight("Venus")
	if err != nil {
		t.Fatalf("weight lookup failed: %v", err)
	}
	if !w.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Venus weight should be 20, got %s", w)
	}

	if !seq.TotalCycleYears().Equal(decimal.NewFromInt(120)) {
		t.Errorf("cycle should be 120, got %s", seq.TotalCycleYears())
	}
}

func TestSequence_SegmentsReturnsCopy(t *testing.T) {
	seq := newNineLordSequence(t)

	segs := seq.Segments()
	segs[0].ID = "Tampered"

	if seq.At(0).ID != "Ketu" {
		t.Error("mutating the returned slice must not affect the sequence")
	}
}

// =============================================================================
// ANCHOR VALIDATION
// =============================================================================

func TestNewAnchor_RejectsFractionOutOfDomain(t *testing.T) {
	seq := newNineLordSequence(t)

	for _, frac := range []string{"-0.1", "1", "1.5"} {
		_, err := generic.NewAnchor(birth2000, 0, decimal.RequireFromString(frac), seq)
		if !errors.Is(err, generic.ErrInvalidAnchor) {
			t.Errorf("fraction %s: expected ErrInvalidAnchor, got: %v", frac, err)
		}
	}
}

func TestNewAnchor_RejectsIndexOutOfRange(t *testing.T) {
	seq := newNineLordSequence(t)

	for _, idx := range []int{-1, 9, 42} {
		_, err := generic.NewAnchor(birth2000, idx, decimal.Zero, seq)
		if !errors.Is(err, generic.ErrInvalidAnchor) {
			t.Errorf("index %d: expected ErrInvalidAnchor, got: %v", idx, err)
		}
	}
}

func TestNewAnchor_RejectsZeroInstant(t *testing.T) {
	seq := newNineLordSequence(t)

	_, err := generic.NewAnchor(time.Time{}, 0, decimal.Zero, seq)
	if !errors.Is(err, generic.ErrInvalidAnchor) {
		t.Errorf("expected ErrInvalidAnchor, got: %v", err)
	}
}

func TestInvalidAnchorError_Message(t *testing.T) {
	seq := newNineLordSequence(t)

	_, err := generic.NewAnchor(birth2000, 42, decimal.Zero, seq)
	if err == nil || !strings.Contains(err.Error(), "startIndex") {
		t.Errorf("error should name the offending field, got: %v", err)
	}
}

// =============================================================================
// BUILDER INPUT VALIDATION
// =============================================================================

func TestBuildTimeline_RejectsNonPositiveSpan(t *testing.T) {
	seq := newNineLordSequence(t)
	anchor := sunAnchor(t, seq)

	for _, span := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := generic.BuildTimeline(anchor, seq, span)
		if !errors.Is(err, generic.ErrInvalidSpan) {
			t.Errorf("span %s: expected ErrInvalidSpan, got: %v", span, err)
		}
	}
}

func TestBuildTimeline_ValidatesAnchorAgainstSequence(t *testing.T) {
	seq := newNineLordSequence(t)

	// A directly-constructed anchor skips NewAnchor validation; the
	// builder must still reject it.
	anchor := generic.Anchor{
		BirthInstant:     birth2000,
		StartIndex:       99,
		FractionConsumed: decimal.Zero,
	}
	_, err := generic.BuildTimeline(anchor, seq, span120())
	if !errors.Is(err, generic.ErrInvalidAnchor) {
		t.Errorf("expected ErrInvalidAnchor, got: %v", err)
	}
}

func TestBuildTimeline_IntervalExtentMatchesDuration(t *testing.T) {
	seq := newNineLordSequence(t)

	tl, err := generic.BuildTimeline(sunAnchor(t, seq), seq, span120())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// End-Start and DurationDays agree under the 365.25 convention to
	// within a nanosecond of rounding.
	for i, iv := range tl {
		gotNanos := decimal.NewFromInt(iv.Duration().Nanoseconds())
		wantNanos := iv.DurationDays.Mul(decimal.NewFromInt(24 * 60 * 60 * 1_000_000_000))
		if gotNanos.Sub(wantNanos).Abs().GreaterThan(decimal.NewFromInt(1)) {
			t.Errorf("interval %d: extent %s ns disagrees with duration %s days", i, gotNanos, iv.DurationDays)
		}
	}
}

// =============================================================================
// SUBDIVISION INPUT VALIDATION
// =============================================================================

func TestSubdivide_RejectsUnknownSegment(t *testing.T) {
	seq := newNineLordSequence(t)

	parent := generic.Interval{
		SegmentID:    "Pluto",
		Start:        birth2000,
		End:          birth2000.AddDate(1, 0, 0),
		DurationDays: decimal.NewFromInt(365),
	}
	_, err := generic.Subdivide(parent, seq)
	if !errors.Is(err, generic.ErrSegmentNotFound) {
		t.Errorf("expected ErrSegmentNotFound, got: %v", err)
	}
}

func TestSubdivide_RejectsNonPositiveDuration(t *testing.T) {
	seq := newNineLordSequence(t)

	parent := generic.Interval{
		SegmentID:    "Moon",
		Start:        birth2000,
		End:          birth2000,
		DurationDays: decimal.Zero,
	}
	_, err := generic.Subdivide(parent, seq)
	if !errors.Is(err, generic.ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got: %v", err)
	}
}

// =============================================================================
// QUERY EDGE CASES
// =============================================================================

func TestFindActive_EmptyTimeline(t *testing.T) {
	_, err := generic.FindActive(generic.Timeline{}, birth2000)
	if !errors.Is(err, generic.ErrEmptyTimeline) {
		t.Errorf("expected ErrEmptyTimeline, got: %v", err)
	}
}

func TestFindActivePath_DepthZeroIsTopLevelOnly(t *testing.T) {
	seq := newNineLordSequence(t)
	anchor := sunAnchor(t, seq)

	path, err := generic.FindActivePath(anchor, seq, span120(), birth2000.AddDate(8, 0, 0), 0)
	if err != nil {
		t.Fatalf("path query failed: %v", err)
	}
	if len(path) != 1 || path[0].Level != 0 {
		t.Errorf("depth 0 should return only the level-0 interval, got %v", path)
	}
}

func TestActivePath_EmptyTree(t *testing.T) {
	_, err := generic.ActivePath(nil, birth2000)
	if !errors.Is(err, generic.ErrEmptyTimeline) {
		t.Errorf("expected ErrEmptyTimeline, got: %v", err)
	}
}

// =============================================================================
// ERROR TAXONOMY
// =============================================================================

func TestErrorHelpers_Classification(t *testing.T) {
	clientErrs := []error{
		generic.ErrInvalidSequence,
		generic.ErrInvalidAnchor,
		generic.ErrInvalidSpan,
		generic.ErrInvalidInterval,
		&generic.InvalidSequenceError{Reason: "x"},
		&generic.InvalidAnchorError{Field: "f", Value: "v"},
	}
	for _, err := range clientErrs {
		if !generic.IsClientError(err) {
			t.Errorf("IsClientError(%v) should be true", err)
		}
	}

	notFoundErrs := []error{
		generic.ErrSegmentNotFound,
		generic.ErrEmptyTimeline,
		&generic.SegmentNotFoundError{ID: "Pluto"},
	}
	for _, err := range notFoundErrs {
		if !generic.IsNotFound(err) {
			t.Errorf("IsNotFound(%v) should be true", err)
		}
	}

	if generic.IsClientError(generic.ErrSegmentNotFound) {
		t.Error("lookup failures are not client configuration errors")
	}
}

func TestInvalidSequenceError_MessageCarriesSums(t *testing.T) {
	_, err := generic.NewSequence(decimal.NewFromInt(120),
		generic.NewSegment("A", 60),
		generic.NewSegment("B", 59),
	)
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "120") || !strings.Contains(msg, "119") {
		t.Errorf("message should carry declared and actual sums, got: %s", msg)
	}
}
