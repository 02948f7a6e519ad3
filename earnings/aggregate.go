/*
aggregate.go - Summary reduction over a shift collection

PURPOSE:
  Reduces an (already filtered) collection of shifts into the summary a
  driver sees on the analytics screen: totals and per-shift averages for the
  selected period.

KEY INSIGHT:
  The aggregate is a single pure reduction, recomputed from scratch on every
  change to the period or the underlying shifts. There is no incremental
  update path to keep consistent - correctness over cleverness at this data
  volume (a driver records at most a few hundred shifts a year).

DIVISION GUARD:
  All averages are zero for an empty collection. Never NaN, never a panic.

SEE ALSO:
  - calc.go: The per-shift figures being summed
  - period.go: How the input collection gets filtered
*/
package earnings

import "github.com/shopspring/decimal"

// SummaryReport is the aggregate a collaborator renders for one period.
type SummaryReport struct {
	Count         int
	TotalOrders   int
	TotalDistance decimal.Decimal
	TotalSalary   decimal.Decimal
	TotalFuel     decimal.Decimal
	TotalEarnings decimal.Decimal
	AvgSalary     decimal.Decimal
	AvgEarnings   decimal.Decimal
	AvgDistance   decimal.Decimal
}

// Aggregate reduces shifts to a SummaryReport under the given tariff.
// TotalEarnings always equals TotalSalary + TotalFuel because the per-shift
// figure decomposes the same way.
func Aggregate(shifts []ShiftRecord, tariff TariffConfig) SummaryReport {
	report := SummaryReport{
		Count:         len(shifts),
		TotalDistance: decimal.Zero,
		TotalSalary:   decimal.Zero,
		TotalFuel:     decimal.Zero,
		TotalEarnings: decimal.Zero,
		AvgSalary:     decimal.Zero,
		AvgEarnings:   decimal.Zero,
		AvgDistance:   decimal.Zero,
	}

	for _, s := range shifts {
		report.TotalOrders += s.Orders
		report.TotalDistance = report.TotalDistance.Add(s.Distance)
		report.TotalSalary = report.TotalSalary.Add(GuaranteedSalary(s, tariff))
		report.TotalFuel = report.TotalFuel.Add(FuelCost(s, tariff))
		report.TotalEarnings = report.TotalEarnings.Add(TotalEarnings(s, tariff))
	}

	if report.Count > 0 {
		n := decimal.NewFromInt(int64(report.Count))
		report.AvgSalary = report.TotalSalary.Div(n)
		report.AvgEarnings = report.TotalEarnings.Div(n)
		report.AvgDistance = report.TotalDistance.Div(n)
	}

	return report
}
