// Package export renders reports as downloadable spreadsheets.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"lezioni/internal/core"
)

const payrollSheet = "Payroll"

var payrollHeader = []any{"Student ID", "Student", "Hours", "Hourly Rate", "Earnings"}

// PayrollWorkbook renders a payroll report as an xlsx workbook: a header
// row, one row per student and a totals row.
func PayrollWorkbook(report core.PayrollReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), payrollSheet)

	title := fmt.Sprintf("Payroll %s / %s", report.StartDate, report.EndDate)
	if err := f.SetCellValue(payrollSheet, "A1", title); err != nil {
		return nil, fmt.Errorf("write title: %w", err)
	}
	if err := f.SetSheetRow(payrollSheet, "A2", &payrollHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	row := 3
	for _, s := range report.Students {
		cells := []any{s.StudentID, s.StudentName, s.Hours, s.HourlyRate, s.Earnings}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(payrollSheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	totals := []any{"", "Total", report.TotalHours, "", report.TotalEarnings}
	cell := fmt.Sprintf("A%d", row)
	if err := f.SetSheetRow(payrollSheet, cell, &totals); err != nil {
		return nil, fmt.Errorf("write totals: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}
