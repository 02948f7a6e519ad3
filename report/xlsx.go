// Package report renders a period earnings report as a downloadable
// workbook: a summary sheet with the aggregate figures and a shifts sheet
// with one row per shift.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/drivestat/earnings-engine/earnings"
)

// BuildXLSX renders the report for one driver's filtered shifts.
func BuildXLSX(driverID string, window earnings.DateRange, summary earnings.SummaryReport, shifts []earnings.ShiftRecord, tariff earnings.TariffConfig) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	shiftsSheet := "shifts"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(shiftsSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Earnings Report")
	_ = f.SetCellValue(summarySheet, "A3", "Driver")
	_ = f.SetCellValue(summarySheet, "B3", driverID)
	_ = f.SetCellValue(summarySheet, "A4", "From")
	_ = f.SetCellValue(summarySheet, "B4", boundLabel(window.From))
	_ = f.SetCellValue(summarySheet, "A5", "To")
	_ = f.SetCellValue(summarySheet, "B5", boundLabel(window.To))
	_ = f.SetCellValue(summarySheet, "A6", "Shifts")
	_ = f.SetCellValue(summarySheet, "B6", summary.Count)
	_ = f.SetCellValue(summarySheet, "A7", "Total Orders")
	_ = f.SetCellValue(summarySheet, "B7", summary.TotalOrders)
	_ = f.SetCellValue(summarySheet, "A8", "Total Distance")
	_ = f.SetCellValue(summarySheet, "B8", summary.TotalDistance.StringFixed(2))
	_ = f.SetCellValue(summarySheet, "A9", "Total Salary")
	_ = f.SetCellValue(summarySheet, "B9", summary.TotalSalary.StringFixed(2))
	_ = f.SetCellValue(summarySheet, "A10", "Total Fuel")
	_ = f.SetCellValue(summarySheet, "B10", summary.TotalFuel.StringFixed(2))
	_ = f.SetCellValue(summarySheet, "A11", "Total Earnings")
	_ = f.SetCellValue(summarySheet, "B11", summary.TotalEarnings.StringFixed(2))
	_ = f.SetCellValue(summarySheet, "A12", "Avg Salary / Shift")
	_ = f.SetCellValue(summarySheet, "B12", summary.AvgSalary.StringFixed(2))
	_ = f.SetCellValue(summarySheet, "A13", "Avg Earnings / Shift")
	_ = f.SetCellValue(summarySheet, "B13", summary.AvgEarnings.StringFixed(2))
	_ = f.SetCellValue(summarySheet, "A14", "Avg Distance / Shift")
	_ = f.SetCellValue(summarySheet, "B14", summary.AvgDistance.StringFixed(2))

	_ = f.SetCellValue(shiftsSheet, "A1", "Date")
	_ = f.SetCellValue(shiftsSheet, "B1", "Type")
	_ = f.SetCellValue(shiftsSheet, "C1", "Orders")
	_ = f.SetCellValue(shiftsSheet, "D1", "Distance")
	_ = f.SetCellValue(shiftsSheet, "E1", "Fuel")
	_ = f.SetCellValue(shiftsSheet, "F1", "Salary")
	_ = f.SetCellValue(shiftsSheet, "G1", "Earnings")
	for i, s := range shifts {
		row := i + 2
		_ = f.SetCellValue(shiftsSheet, fmt.Sprintf("A%d", row), s.Date.String())
		_ = f.SetCellValue(shiftsSheet, fmt.Sprintf("B%d", row), typeLabel(s.Type))
		_ = f.SetCellValue(shiftsSheet, fmt.Sprintf("C%d", row), s.Orders)
		_ = f.SetCellValue(shiftsSheet, fmt.Sprintf("D%d", row), s.Distance.StringFixed(2))
		_ = f.SetCellValue(shiftsSheet, fmt.Sprintf("E%d", row), earnings.FuelCost(s, tariff).StringFixed(2))
		_ = f.SetCellValue(shiftsSheet, fmt.Sprintf("F%d", row), earnings.GuaranteedSalary(s, tariff).StringFixed(2))
		_ = f.SetCellValue(shiftsSheet, fmt.Sprintf("G%d", row), earnings.TotalEarnings(s, tariff).StringFixed(2))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func boundLabel(d *earnings.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

// typeLabel renders the classification the way the shift table shows it:
// unclassified shifts display as day shifts, the floor rule aside.
func typeLabel(t earnings.ShiftType) string {
	if t == earnings.ShiftEvening {
		return "evening"
	}
	return "day"
}
