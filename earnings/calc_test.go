package earnings_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivestat/earnings-engine/earnings"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// basicTariff mirrors the shipped defaults with minimums off.
func basicTariff() earnings.TariffConfig {
	return earnings.TariffConfig{
		OrderPrice: dec("100"),
		FuelPrice:  dec("60"),
		FuelRate:   dec("10"),
	}
}

func minSalaryTariff(day, evening string) earnings.TariffConfig {
	t := basicTariff()
	t.MinSalaryEnabled = true
	t.MinSalaryDay = dec(day)
	t.MinSalaryEvening = dec(evening)
	return t
}

func shift(orders int, distance string) earnings.ShiftRecord {
	return earnings.ShiftRecord{Orders: orders, Distance: dec(distance)}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s, got %s", want, got)
}

// =============================================================================
// PER-SHIFT CALCULATORS
// =============================================================================

func TestFuelCost_StandardTariff(t *testing.T) {
	// GIVEN: 50 distance units at 10 L/100 and 60 per liter
	// THEN: fuel cost is (50*10/100)*60 = 300
	assertDecimal(t, "300", earnings.FuelCost(shift(5, "50"), basicTariff()))
}

func TestFuelCost_ZeroDistance(t *testing.T) {
	assertDecimal(t, "0", earnings.FuelCost(shift(5, "0"), basicTariff()))
}

func TestFuelCost_FractionalDistance(t *testing.T) {
	// (12.5 * 10 / 100) * 60 = 75
	assertDecimal(t, "75", earnings.FuelCost(shift(0, "12.5"), basicTariff()))
}

func TestFuelCost_ZeroValueTariff_IsZeroNotError(t *testing.T) {
	// GIVEN: A tariff whose fuel fields were never set (malformed source
	//        data coerces to the zero value upstream)
	// THEN: The fuel contribution is zero, not an error
	var empty earnings.TariffConfig
	assertDecimal(t, "0", earnings.FuelCost(shift(5, "50"), empty))
}

func TestBaseEarnings(t *testing.T) {
	assertDecimal(t, "500", earnings.BaseEarnings(shift(5, "50"), basicTariff()))
	assertDecimal(t, "0", earnings.BaseEarnings(shift(0, "50"), basicTariff()))
}

func TestGuaranteedSalary_NoFloorWhenDisabled(t *testing.T) {
	assertDecimal(t, "500", earnings.GuaranteedSalary(shift(5, "50"), basicTariff()))
}

func TestGuaranteedSalary_FloorRaisesLowRevenue(t *testing.T) {
	// GIVEN: Day shift earning 500 from orders, floor 600
	// THEN: Salary is the floor, which replaces (not tops up) the revenue
	s := shift(5, "50")
	s.Type = earnings.ShiftDay
	assertDecimal(t, "600", earnings.GuaranteedSalary(s, minSalaryTariff("600", "35")))
}

func TestGuaranteedSalary_FloorDoesNotCapHighRevenue(t *testing.T) {
	s := shift(10, "50")
	s.Type = earnings.ShiftDay
	assertDecimal(t, "1000", earnings.GuaranteedSalary(s, minSalaryTariff("600", "35")))
}

func TestGuaranteedSalary_EveningFloor(t *testing.T) {
	s := shift(1, "10")
	s.Type = earnings.ShiftEvening
	assertDecimal(t, "350", earnings.GuaranteedSalary(s, minSalaryTariff("600", "350")))
}

func TestGuaranteedSalary_EqualRevenueAndFloor(t *testing.T) {
	// Tie keeps the revenue; indistinguishable from the floor, but the
	// comparison must not misfire.
	s := shift(6, "0")
	s.Type = earnings.ShiftDay
	assertDecimal(t, "600", earnings.GuaranteedSalary(s, minSalaryTariff("600", "35")))
}

func TestGuaranteedSalary_UntypedShiftNeverFloored(t *testing.T) {
	// GIVEN: Minimums enabled but the shift has no classification
	// THEN: Plain order revenue, the floor is not applied
	assertDecimal(t, "500", earnings.GuaranteedSalary(shift(5, "50"), minSalaryTariff("600", "350")))
}

func TestTotalEarnings_FuelIsAdditive(t *testing.T) {
	// GIVEN: Salary 500 and fuel 300
	// THEN: Total is 800 - fuel compensation adds to the wage component
	assertDecimal(t, "800", earnings.TotalEarnings(shift(5, "50"), basicTariff()))
}

func TestTotalEarnings_FlooredShift(t *testing.T) {
	s := shift(5, "50")
	s.Type = earnings.ShiftDay
	assertDecimal(t, "900", earnings.TotalEarnings(s, minSalaryTariff("600", "35")))
}

func TestTotalEarnings_DecomposesExactly(t *testing.T) {
	shifts := []earnings.ShiftRecord{
		shift(5, "50"),
		shift(0, "0"),
		{Orders: 3, Distance: dec("17.3"), Type: earnings.ShiftEvening},
		{Orders: 12, Distance: dec("140"), Type: earnings.ShiftDay},
	}
	tariffs := []earnings.TariffConfig{
		basicTariff(),
		minSalaryTariff("600", "350"),
		{},
	}
	for _, s := range shifts {
		for _, tf := range tariffs {
			want := earnings.GuaranteedSalary(s, tf).Add(earnings.FuelCost(s, tf))
			got := earnings.TotalEarnings(s, tf)
			assert.True(t, got.Equal(want), "shift %+v tariff %+v: want %s, got %s", s, tf, want, got)
		}
	}
}

// =============================================================================
// PARSE-OR-ZERO COERCION
// =============================================================================

func TestParseDecimalOrZero(t *testing.T) {
	assertDecimal(t, "12.5", earnings.ParseDecimalOrZero("12.5"))
	assertDecimal(t, "0", earnings.ParseDecimalOrZero(""))
	assertDecimal(t, "0", earnings.ParseDecimalOrZero("not a number"))
	assertDecimal(t, "-3", earnings.ParseDecimalOrZero("-3"))
}

func TestDecimalOrZero_AcceptsLooseTypes(t *testing.T) {
	assertDecimal(t, "60", earnings.DecimalOrZero(json.Number("60")))
	assertDecimal(t, "60", earnings.DecimalOrZero("60"))
	assertDecimal(t, "60", earnings.DecimalOrZero(float64(60)))
	assertDecimal(t, "60", earnings.DecimalOrZero(int64(60)))
	assertDecimal(t, "60", earnings.DecimalOrZero(dec("60")))
}

func TestDecimalOrZero_MalformedReadsAsZero(t *testing.T) {
	assertDecimal(t, "0", earnings.DecimalOrZero(nil))
	assertDecimal(t, "0", earnings.DecimalOrZero(true))
	assertDecimal(t, "0", earnings.DecimalOrZero("sixty"))
	assertDecimal(t, "0", earnings.DecimalOrZero(map[string]any{}))
	assertDecimal(t, "0", earnings.DecimalOrZero(math.NaN()))
	assertDecimal(t, "0", earnings.DecimalOrZero(math.Inf(1)))
}

func TestCoercion_IsPerFieldNotWholeComputation(t *testing.T) {
	// GIVEN: A tariff row whose fuelPrice was garbage but orderPrice fine
	// THEN: Only the fuel contribution zeroes; the salary survives
	tf := earnings.TariffConfig{
		OrderPrice: earnings.DecimalOrZero(json.Number("100")),
		FuelPrice:  earnings.DecimalOrZero("garbage"),
		FuelRate:   earnings.DecimalOrZero(json.Number("10")),
	}
	s := shift(5, "50")
	assertDecimal(t, "0", earnings.FuelCost(s, tf))
	assertDecimal(t, "500", earnings.GuaranteedSalary(s, tf))
	assertDecimal(t, "500", earnings.TotalEarnings(s, tf))
}

func TestIntOrZero(t *testing.T) {
	require.Equal(t, 5, earnings.IntOrZero(json.Number("5")))
	require.Equal(t, 5, earnings.IntOrZero(float64(5.9))) // truncates
	require.Equal(t, 0, earnings.IntOrZero("five"))
	require.Equal(t, 0, earnings.IntOrZero(nil))
}
