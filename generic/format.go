package generic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DURATION BREAKDOWN - Display only, never used in comparisons
// =============================================================================

// Breakdown is a day count split into calendar-ish units for display.
// It shares DaysPerYear/DaysPerMonth with construction so a formatted
// duration never disagrees with the timeline it came from.
type Breakdown struct {
	Years  int
	Months int
	Days   int
}

// BreakdownDays converts a day count into a {years, months, days}
// triple. Negative inputs are treated as their magnitude.
func BreakdownDays(days decimal.Decimal) Breakdown {
	if days.IsNegative() {
		days = days.Abs()
	}

	years := days.Div(DaysPerYear).Floor()
	rem := days.Sub(years.Mul(DaysPerYear))

	months := rem.Div(DaysPerMonth).Floor()
	rem = rem.Sub(months.Mul(DaysPerMonth))

	return Breakdown{
		Years:  int(years.IntPart()),
		Months: int(months.IntPart()),
		Days:   int(rem.Floor().IntPart()),
	}
}

func (b Breakdown) String() string {
	return fmt.Sprintf("%dy %dm %dd", b.Years, b.Months, b.Days)
}
