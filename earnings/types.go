/*
Package earnings is the calculation core of the DriveStat service.

PURPOSE:
  This package turns raw shift records plus a driver's tariff configuration
  into money figures: fuel cost, guaranteed salary, and total earnings, both
  per shift and aggregated over a reporting period. It is the single place
  these formulas live - every caller (HTTP handlers, exports, tests) imports
  them from here.

KEY CONCEPTS IN THIS FILE (types.go):
  - TariffConfig: A driver's pricing rules (order price, fuel price/rate,
    optional minimum-salary floors)
  - ShiftRecord: One completed work shift (date, orders, distance, type)
  - ShiftType: Optional day/evening classification
  - Parse-or-zero coercion helpers for loosely-typed numeric input

DESIGN PRINCIPLES:
  1. Purity: No I/O, no wall clock, no storage. Values in, values out.
  2. Precision: Uses decimal.Decimal to avoid floating-point money errors.
  3. Never fail: Malformed numeric input coerces to zero per field; no
     calculation function returns an error or panics.
  4. One owner: A tariff and its shifts belong to a single driver; the
     engine never mixes owners (enforced by callers - the engine simply
     has no owner field to confuse).

USAGE:
  tariff := earnings.DefaultTariff()
  shift := earnings.ShiftRecord{Orders: 5, Distance: decimal.NewFromInt(50)}
  total := earnings.TotalEarnings(shift, tariff)

SEE ALSO:
  - calc.go: Per-shift calculators
  - period.go: Reporting-window filtering
  - aggregate.go: Summary reduction over a shift collection
*/
package earnings

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SHIFT TYPE - Optional day/evening classification
// =============================================================================

// ShiftType classifies a shift for minimum-salary purposes.
// The zero value means the shift was recorded without a classification;
// the minimum-salary floor is never applied to such shifts, even when the
// tariff enables it.
type ShiftType string

const (
	ShiftUntyped ShiftType = ""
	ShiftDay     ShiftType = "day"
	ShiftEvening ShiftType = "evening"
)

// Known reports whether t is one of the recognized classifications.
func (t ShiftType) Known() bool { return t == ShiftDay || t == ShiftEvening }

// =============================================================================
// TARIFF CONFIG - A driver's pricing rules
// =============================================================================

// TariffConfig is an immutable snapshot of one driver's pricing rules.
// It is read before any calculation and replaced wholesale on save;
// there are no partial updates.
type TariffConfig struct {
	// Payout per completed order.
	OrderPrice decimal.Decimal

	// Fuel cost per liter.
	FuelPrice decimal.Decimal

	// Liters consumed per 100 distance units.
	FuelRate decimal.Decimal

	// Whether the guaranteed per-shift minimum applies.
	MinSalaryEnabled bool

	// Guaranteed minimums, meaningful only when MinSalaryEnabled.
	MinSalaryDay     decimal.Decimal
	MinSalaryEvening decimal.Decimal
}

// DefaultTariff returns the configuration substituted wholesale when a
// driver has not saved one yet.
func DefaultTariff() TariffConfig {
	return TariffConfig{
		OrderPrice:       decimal.NewFromInt(100),
		FuelPrice:        decimal.NewFromInt(60),
		FuelRate:         decimal.NewFromInt(10),
		MinSalaryEnabled: false,
		MinSalaryDay:     decimal.NewFromInt(65),
		MinSalaryEvening: decimal.NewFromInt(35),
	}
}

// =============================================================================
// SHIFT RECORD - One completed work shift
// =============================================================================

// ShiftRecord is an immutable snapshot of one completed shift. Records are
// edited or deleted only through explicit owner actions upstream; the
// engine itself never mutates them.
type ShiftRecord struct {
	// Unique within the owner's collection. Opaque to the engine.
	ID string

	// Calendar day the shift occurred.
	Date Date

	// Completed orders. Never negative for well-formed input.
	Orders int

	// Distance driven, in the tariff's distance unit.
	Distance decimal.Decimal

	// Optional classification. ShiftUntyped when the driver recorded the
	// shift without one (minimum-salary tariffs record it, others don't).
	Type ShiftType
}

// =============================================================================
// PARSE-OR-ZERO COERCION
// =============================================================================
// The upstream data source is loosely typed: numeric fields may arrive as
// numbers, numeric strings, or be missing entirely. The contract is that a
// field that cannot be read as a finite number contributes zero - locally,
// without poisoning the rest of the computation.

// ParseDecimalOrZero parses s as a decimal, returning zero for anything
// unparseable (including the empty string).
func ParseDecimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DecimalOrZero coerces a JSON-decoded value to a decimal. Accepts
// json.Number, float64, int, int64, string, and decimal.Decimal;
// everything else (nil, bool, objects) reads as zero.
func DecimalOrZero(v any) decimal.Decimal {
	switch x := v.(type) {
	case decimal.Decimal:
		return x
	case json.Number:
		return ParseDecimalOrZero(x.String())
	case string:
		return ParseDecimalOrZero(x)
	case float64:
		// NaN and infinities read as zero like any other malformed input.
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	default:
		return decimal.Zero
	}
}

// IntOrZero coerces a JSON-decoded value to an integer, truncating
// fractional input. Unparseable values read as zero.
func IntOrZero(v any) int {
	return int(DecimalOrZero(v).IntPart())
}
