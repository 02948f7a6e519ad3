/*
calc.go - Per-shift money calculators

PURPOSE:
  Derives the money figures for one shift under one tariff. These four
  functions are the only place the earnings formulas exist; every screen,
  report, and export goes through them.

FORMULAS:
  FuelCost         = (distance * fuelRate / 100) * fuelPrice
  BaseEarnings     = orders * orderPrice
  GuaranteedSalary = max(BaseEarnings, floor)   when the floor applies
  TotalEarnings    = GuaranteedSalary + FuelCost

THE FLOOR:
  When MinSalaryEnabled and the shift carries a day/evening classification,
  the salary is floored at the configured minimum for that classification.
  The floor REPLACES low order revenue, it is not added on top. A shift with
  no classification never gets the floor, even with MinSalaryEnabled set -
  those shifts were recorded before the driver enabled minimums and there is
  no way to know which floor they should get.

FUEL IS ADDITIVE:
  Total earnings is salary PLUS fuel compensation. Historically one display
  subtracted fuel instead; that disagreed with every other call site and
  with the "total income" figure shown to drivers, and was fixed by routing
  everything through this file.

FAILURE SEMANTICS:
  None. These functions cannot fail: inputs are typed decimals whose zero
  value is 0, and the parse boundary (types.go) has already coerced any
  malformed source field to zero. A financial summary shows zeroed partial
  figures rather than refusing to render.

SEE ALSO:
  - types.go: TariffConfig, ShiftRecord, coercion helpers
  - aggregate.go: Sums these figures over a period
*/
package earnings

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FuelCost returns the money attributable to fuel for the shift's distance:
// (distance * fuelRate / 100) * fuelPrice. Non-negative for non-negative
// inputs.
func FuelCost(shift ShiftRecord, tariff TariffConfig) decimal.Decimal {
	liters := shift.Distance.Mul(tariff.FuelRate).Div(hundred)
	return liters.Mul(tariff.FuelPrice)
}

// BaseEarnings returns the order-based payout before any minimum-salary
// floor: orders * orderPrice.
func BaseEarnings(shift ShiftRecord, tariff TariffConfig) decimal.Decimal {
	return decimal.NewFromInt(int64(shift.Orders)).Mul(tariff.OrderPrice)
}

// GuaranteedSalary returns the order revenue floored at the configured
// minimum when the tariff enables minimums AND the shift is classified.
// Unclassified shifts always earn plain order revenue.
func GuaranteedSalary(shift ShiftRecord, tariff TariffConfig) decimal.Decimal {
	revenue := BaseEarnings(shift, tariff)
	if !tariff.MinSalaryEnabled || shift.Type == ShiftUntyped {
		return revenue
	}
	floor := tariff.MinSalaryDay
	if shift.Type == ShiftEvening {
		floor = tariff.MinSalaryEvening
	}
	if revenue.LessThan(floor) {
		return floor
	}
	return revenue
}

// TotalEarnings is the headline income figure for one shift:
// guaranteed salary plus fuel compensation.
func TotalEarnings(shift ShiftRecord, tariff TariffConfig) decimal.Decimal {
	return GuaranteedSalary(shift, tariff).Add(FuelCost(shift, tariff))
}
