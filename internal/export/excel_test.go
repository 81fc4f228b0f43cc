package export

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"lezioni/internal/core"
)

func TestPayrollWorkbook(t *testing.T) {
	report := core.PayrollReport{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Students: []core.PayrollRow{
			{StudentID: "a1b2c3d4", StudentName: "Anna", Hours: 4, HourlyRate: 20, Earnings: 80},
			{StudentID: "e5f6a7b8", StudentName: "Bruno", Hours: 1.5, HourlyRate: 18, Earnings: 27},
		},
		TotalHours:    5.5,
		TotalEarnings: 107,
	}

	buf, err := PayrollWorkbook(report)
	if err != nil {
		t.Fatalf("PayrollWorkbook() error = %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(payrollSheet)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}

	// title + header + 2 students + totals
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	if rows[0][0] != "Payroll 2024-01-01 / 2024-01-31" {
		t.Errorf("title = %q", rows[0][0])
	}
	if rows[1][1] != "Student" {
		t.Errorf("header = %v", rows[1])
	}
	if rows[2][1] != "Anna" || rows[3][1] != "Bruno" {
		t.Errorf("student rows = %v, %v", rows[2], rows[3])
	}
	if rows[4][1] != "Total" || rows[4][2] != "5.5" {
		t.Errorf("totals row = %v", rows[4])
	}
}

func TestPayrollWorkbookEmptyReport(t *testing.T) {
	buf, err := PayrollWorkbook(core.PayrollReport{
		StartDate: "2024-02-01",
		EndDate:   "2024-02-28",
	})
	if err != nil {
		t.Fatalf("PayrollWorkbook() error = %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(payrollSheet)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	// title + header + totals
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
}
