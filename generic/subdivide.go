/*
subdivide.go - Proportional subdivision of one interval

PURPOSE:
  Splits a single interval into exactly N children, one per segment of
  the rotation, each scaled to weight/cycle of the parent's duration.
  Unlike the top-level builder there is no overrun: the children cover
  [parent.Start, parent.End) exactly.

SELF-STARTING ROTATION:
  Children begin at the PARENT segment's own position in the sequence,
  not at position zero. A Moon interval subdivides into Moon, Mars,
  Rahu, ... wrapping around to Sun. This is the defining difference
  between sub-periods and the top-level construction.

TELESCOPING DURATIONS:
  Child durations are differences of cumulative weight fractions of the
  parent duration, so their sum telescopes to the parent duration
  exactly and the last child closes exactly on the parent's end. No
  per-child rounding can accumulate into a gap or an overhang.

Pure and deterministic; callable recursively to any depth.
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// Subdivide splits parent into one child per segment of the rotation,
// proportionally scaled and self-starting at the parent's segment.
func Subdivide(parent Interval, seq *Sequence) (Timeline, error) {
	startIdx, err := seq.IndexOf(parent.SegmentID)
	if err != nil {
		return nil, err
	}
	if !parent.DurationDays.IsPositive() || !parent.End.After(parent.Start) {
		return nil, ErrInvalidInterval
	}

	total := seq.TotalCycleYears()
	children := make(Timeline, 0, seq.Len())

	cursor := parent.Start
	cumWeight := decimal.Zero
	prevCumDays := decimal.Zero

	idx := startIdx
	for i := 0; i < seq.Len(); i++ {
		seg := seq.At(idx)
		cumWeight = cumWeight.Add(seg.WeightYears)
		cumDays := parent.DurationDays.Mul(cumWeight).Div(total)

		end := parent.Start.Add(daysToDuration(cumDays))
		if i == seq.Len()-1 {
			// cumWeight == total here, so the last child closes exactly
			// on the parent boundary.
			end = parent.End
		}

		children = append(children, Interval{
			SegmentID:    seg.ID,
			Start:        cursor,
			End:          end,
			DurationDays: cumDays.Sub(prevCumDays),
			Level:        parent.Level + 1,
			ParentID:     parent.SegmentID,
		})

		cursor = end
		prevCumDays = cumDays
		idx = seq.Next(idx)
	}

	return children, nil
}
