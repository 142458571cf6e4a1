/*
builder.go - Top-level timeline construction

PURPOSE:
  Builds the ordered level-0 interval list for a subject: the first
  interval is the anchor segment prorated by how much of it had already
  elapsed at the birth instant, every later interval takes its
  segment's full weight, and construction walks the rotation until the
  accumulated span reaches the requested total.

BOUNDARY ARITHMETIC:
  Interval boundaries are derived from ONE running day count measured
  from the birth instant, so each interval starts exactly where the
  previous one ended: contiguity holds by construction, not by
  after-the-fact adjustment. Day counts stay in decimal until the final
  projection onto time.Time.

TAIL OVERRUN:
  The last interval is NOT truncated to the span boundary. Once the
  accumulated duration reaches the requested span the interval in
  flight keeps its full weight, so the generated range can overrun the
  nominal total by up to one segment's weight. Queries near the outer
  boundary therefore resolve inside the final full interval.

SEE ALSO:
  - subdivide.go: Splits any produced interval into children
  - query.go: Point-in-time lookup over the produced timeline
*/
package generic

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// BuildTimeline produces the ordered, contiguous level-0 timeline for
// an anchor, covering at least spanYears starting at the birth instant.
func BuildTimeline(anchor Anchor, seq *Sequence, spanYears decimal.Decimal) (Timeline, error) {
	if err := anchor.Validate(seq); err != nil {
		return nil, err
	}
	if !spanYears.IsPositive() {
		return nil, ErrInvalidSpan
	}

	var tl Timeline
	idx := anchor.StartIndex

	// The anchor segment is prorated by the fraction already consumed.
	years := seq.At(idx).WeightYears.Mul(one.Sub(anchor.FractionConsumed))

	cursor := anchor.BirthInstant
	cumDays := decimal.Zero // running day count since birth
	cumYears := decimal.Zero

	for {
		days := years.Mul(DaysPerYear)
		cumDays = cumDays.Add(days)
		end := anchor.BirthInstant.Add(daysToDuration(cumDays))

		tl = append(tl, Interval{
			SegmentID:    seq.At(idx).ID,
			Start:        cursor,
			End:          end,
			DurationDays: days,
			Level:        0,
		})

		cursor = end
		cumYears = cumYears.Add(years)
		if cumYears.GreaterThanOrEqual(spanYears) {
			break
		}

		idx = seq.Next(idx)
		years = seq.At(idx).WeightYears
	}

	return tl, nil
}
