// Package valuation computes projected growth for investments. All functions
// are pure: they never touch storage and never fail. Inputs are validated by
// the entity layer before they reach this package.
package valuation

import (
	"math"

	"nestegg/internal/models"
)

// FutureValue returns the projected balance of the investment after its
// configured number of years.
//
// Savings and bond positions compound the principal at the position's own
// compounding policy, while monthly contributions grow as a monthly annuity
// at rate/12 regardless of that policy. The mixed compounding base is a
// deliberate simplification carried over from the product's formula and is
// not unified.
//
// Stock positions compound annually; monthly contributions are folded into
// an annual annuity.
func FutureValue(inv *models.Investment) float64 {
	rate := inv.InterestRate / 100
	t := float64(inv.Years)

	if inv.Kind == models.KindStocks {
		principal := inv.InitialAmount * math.Pow(1+rate, t)
		if monthly, ok := contribution(inv); ok {
			annual := monthly * 12
			return principal + annuity(annual, rate, t)
		}
		return principal
	}

	n := float64(inv.CompoundingPolicy)
	principal := inv.InitialAmount * math.Pow(1+rate/n, n*t)
	if monthly, ok := contribution(inv); ok {
		return principal + annuity(monthly, rate/12, t*12)
	}
	return principal
}

// YearlyGrowth returns the future value at every intermediate year from 1 up
// to the investment's horizon. Index 0 holds year 1; the last element equals
// FutureValue of the investment itself.
func YearlyGrowth(inv *models.Investment) []float64 {
	values := make([]float64, 0, inv.Years)
	for year := 1; year <= inv.Years; year++ {
		step := *inv
		step.Years = year
		values = append(values, FutureValue(&step))
	}
	return values
}

// annuity returns the future value of a per-period payment compounded over
// the given number of periods. A zero rate degenerates to payment * periods
// rather than dividing by zero.
func annuity(payment, rate, periods float64) float64 {
	if rate == 0 {
		return payment * periods
	}
	return payment * (math.Pow(1+rate, periods) - 1) / rate
}

// contribution returns the monthly contribution when one is set and positive.
func contribution(inv *models.Investment) (float64, bool) {
	if inv.MonthlyContribution != nil && *inv.MonthlyContribution > 0 {
		return *inv.MonthlyContribution, true
	}
	return 0, false
}
