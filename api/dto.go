/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

LOOSE NUMERICS:
  The historical data source stored numeric settings loosely - numbers,
  numeric strings, and nulls all occur in the wild. Request types therefore
  carry numeric fields as `any` (decoded with json.Number) and coerce them
  parse-or-zero through the engine's helpers, so a malformed field zeroes
  that field only instead of rejecting the payload.

MONEY ON THE WIRE:
  Computed money figures are rendered as decimal strings rounded to 2
  places, matching what the driver-facing screens display.

SEE ALSO:
  - handlers.go: Uses these types
  - earnings/types.go: The domain model behind them
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/drivestat/earnings-engine/earnings"
)

// =============================================================================
// SHIFTS
// =============================================================================

// ShiftDTO is one shift in API responses, raw fields plus the computed
// figures the shift table displays.
type ShiftDTO struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Orders   int    `json:"orders"`
	Distance string `json:"distance"`
	Type     string `json:"type,omitempty"`

	FuelCost      string `json:"fuel_cost"`
	Salary        string `json:"salary"`
	TotalEarnings string `json:"total_earnings"`
}

// ShiftRequest is the body for creating or updating a shift.
type ShiftRequest struct {
	Date     string `json:"date"`
	Orders   any    `json:"orders"`
	Distance any    `json:"distance"`
	Type     string `json:"type"`
}

// toRecord coerces the loosely-typed body into a domain record.
// The date must parse; everything numeric degrades to zero.
func (r ShiftRequest) toRecord(id string) (earnings.ShiftRecord, error) {
	date, err := earnings.ParseDate(r.Date)
	if err != nil {
		return earnings.ShiftRecord{}, err
	}
	shiftType := earnings.ShiftType(r.Type)
	if !shiftType.Known() {
		shiftType = earnings.ShiftUntyped
	}
	return earnings.ShiftRecord{
		ID:       id,
		Date:     date,
		Orders:   earnings.IntOrZero(r.Orders),
		Distance: earnings.DecimalOrZero(r.Distance),
		Type:     shiftType,
	}, nil
}

func toShiftDTO(shift earnings.ShiftRecord, tariff earnings.TariffConfig) ShiftDTO {
	return ShiftDTO{
		ID:            shift.ID,
		Date:          shift.Date.String(),
		Orders:        shift.Orders,
		Distance:      shift.Distance.String(),
		Type:          string(shift.Type),
		FuelCost:      money(earnings.FuelCost(shift, tariff)),
		Salary:        money(earnings.GuaranteedSalary(shift, tariff)),
		TotalEarnings: money(earnings.TotalEarnings(shift, tariff)),
	}
}

// =============================================================================
// TARIFF
// =============================================================================

// TariffDTO is the tariff in API responses.
type TariffDTO struct {
	OrderPrice       string `json:"order_price"`
	FuelPrice        string `json:"fuel_price"`
	FuelRate         string `json:"fuel_rate"`
	MinSalaryEnabled bool   `json:"min_salary_enabled"`
	MinSalaryDay     string `json:"min_salary_day"`
	MinSalaryEvening string `json:"min_salary_evening"`

	// False when the driver has never saved a tariff and the shipped
	// defaults are being substituted.
	Saved bool `json:"saved"`
}

// TariffRequest is the body for saving a tariff. The save is wholesale:
// fields omitted from the body are stored as zero, not preserved.
type TariffRequest struct {
	OrderPrice       any  `json:"order_price"`
	FuelPrice        any  `json:"fuel_price"`
	FuelRate         any  `json:"fuel_rate"`
	MinSalaryEnabled bool `json:"min_salary_enabled"`
	MinSalaryDay     any  `json:"min_salary_day"`
	MinSalaryEvening any  `json:"min_salary_evening"`
}

func (r TariffRequest) toConfig() earnings.TariffConfig {
	return earnings.TariffConfig{
		OrderPrice:       earnings.DecimalOrZero(r.OrderPrice),
		FuelPrice:        earnings.DecimalOrZero(r.FuelPrice),
		FuelRate:         earnings.DecimalOrZero(r.FuelRate),
		MinSalaryEnabled: r.MinSalaryEnabled,
		MinSalaryDay:     earnings.DecimalOrZero(r.MinSalaryDay),
		MinSalaryEvening: earnings.DecimalOrZero(r.MinSalaryEvening),
	}
}

func toTariffDTO(tariff earnings.TariffConfig, saved bool) TariffDTO {
	return TariffDTO{
		OrderPrice:       tariff.OrderPrice.String(),
		FuelPrice:        tariff.FuelPrice.String(),
		FuelRate:         tariff.FuelRate.String(),
		MinSalaryEnabled: tariff.MinSalaryEnabled,
		MinSalaryDay:     tariff.MinSalaryDay.String(),
		MinSalaryEvening: tariff.MinSalaryEvening.String(),
		Saved:            saved,
	}
}

// =============================================================================
// REPORT
// =============================================================================

// ReportDTO is the period summary for the analytics screen.
type ReportDTO struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	Count         int    `json:"count"`
	TotalOrders   int    `json:"total_orders"`
	TotalDistance string `json:"total_distance"`
	TotalSalary   string `json:"total_salary"`
	TotalFuel     string `json:"total_fuel"`
	TotalEarnings string `json:"total_earnings"`
	AvgSalary     string `json:"avg_salary"`
	AvgEarnings   string `json:"avg_earnings"`
	AvgDistance   string `json:"avg_distance"`
}

func toReportDTO(window earnings.DateRange, report earnings.SummaryReport) ReportDTO {
	dto := ReportDTO{
		Count:         report.Count,
		TotalOrders:   report.TotalOrders,
		TotalDistance: money(report.TotalDistance),
		TotalSalary:   money(report.TotalSalary),
		TotalFuel:     money(report.TotalFuel),
		TotalEarnings: money(report.TotalEarnings),
		AvgSalary:     money(report.AvgSalary),
		AvgEarnings:   money(report.AvgEarnings),
		AvgDistance:   money(report.AvgDistance),
	}
	if window.From != nil {
		dto.From = window.From.String()
	}
	if window.To != nil {
		dto.To = window.To.String()
	}
	return dto
}

// money renders a figure the way the driver-facing screens do: two decimal
// places, plain string.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}
