package generic_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/warp/dasha-engine/generic"
)

func TestBreakdownDays(t *testing.T) {
	cases := []struct {
		name string
		days string
		want generic.Breakdown
	}{
		{"exact ten years", "3652.5", generic.Breakdown{Years: 10, Months: 0, Days: 0}},
		{"prorated sun period", "1906.605", generic.Breakdown{Years: 5, Months: 2, Days: 19}},
		{"zero", "0", generic.Breakdown{}},
		{"less than a month", "12.4", generic.Breakdown{Years: 0, Months: 0, Days: 12}},
		{"one month boundary", "30.4375", generic.Breakdown{Years: 0, Months: 1, Days: 0}},
		{"negative uses magnitude", "-400", generic.Breakdown{Years: 1, Months: 1, Days: 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := generic.BreakdownDays(decimal.RequireFromString(tc.days))
			if got != tc.want {
				t.Errorf("BreakdownDays(%s): want %+v, got %+v", tc.days, tc.want, got)
			}
		})
	}
}

func TestBreakdown_String(t *testing.T) {
	b := generic.Breakdown{Years: 5, Months: 2, Days: 19}
	if b.String() != "5y 2m 19d" {
		t.Errorf("unexpected rendering: %s", b.String())
	}
}

func TestBreakdown_NeverFeedsBackIntoComparisons(t *testing.T) {
	// The breakdown is lossy (floor at each unit); the engine's
	// comparison logic works on DurationDays and instants only. This
	// test pins the lossiness so nobody is tempted to round-trip it.
	days := decimal.RequireFromString("1906.605")
	b := generic.BreakdownDays(days)

	reassembled := decimal.NewFromInt(int64(b.Years)).Mul(generic.DaysPerYear).
		Add(decimal.NewFromInt(int64(b.Months)).Mul(generic.DaysPerMonth)).
		Add(decimal.NewFromInt(int64(b.Days)))

	if reassembled.GreaterThan(days) {
		t.Error("flooring should never reassemble past the input")
	}
}
