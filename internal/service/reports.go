package service

import (
	"context"

	"lezioni/internal/core"
	"lezioni/internal/store"
)

// ReportService joins sessions, attendance, students and payments into the
// payroll and balance reports.
type ReportService struct {
	sessions   *store.Collection[core.Session]
	attendance *store.Collection[core.Attendance]
	students   *store.Collection[core.Student]
	payments   *store.Collection[core.Payment]
}

// Payroll accumulates qualifying hours per student over sessions whose date
// lies in [startDate, endDate], both inclusive, compared lexicographically
// (dates are ISO strings). Earnings use each student's current rate; a
// student referenced by attendance but missing from the collection shows up
// as "Unknown" with rate 0 rather than failing the report.
func (s *ReportService) Payroll(ctx context.Context, startDate, endDate string) (core.PayrollReport, error) {
	report := core.PayrollReport{
		StartDate: startDate,
		EndDate:   endDate,
		Students:  []core.PayrollRow{},
	}

	sessions, err := s.sessions.Load(ctx)
	if err != nil {
		return report, err
	}
	attendance, err := s.attendance.Load(ctx)
	if err != nil {
		return report, err
	}
	students, err := s.students.Load(ctx)
	if err != nil {
		return report, err
	}

	bySession := make(map[string][]core.Attendance, len(attendance))
	for _, a := range attendance {
		bySession[a.SessionID] = append(bySession[a.SessionID], a)
	}

	// Accumulate in first-seen order so the report is deterministic.
	hours := make(map[string]float64)
	var order []string
	for _, sess := range sessions {
		if sess.Date < startDate || sess.Date > endDate {
			continue
		}
		for _, a := range bySession[sess.ID] {
			if !a.Status.Qualifies() {
				continue
			}
			if _, ok := hours[a.StudentID]; !ok {
				order = append(order, a.StudentID)
			}
			hours[a.StudentID] += sess.HoursWorked
		}
	}

	names := make(map[string]string, len(students))
	rates := make(map[string]float64, len(students))
	for _, st := range students {
		names[st.ID] = st.Name
		rates[st.ID] = st.HourlyRate
	}

	for _, studentID := range order {
		h := hours[studentID]
		if h <= 0 {
			// Zero qualifying hours are omitted entirely, not reported as
			// zero-earning rows.
			continue
		}
		name, ok := names[studentID]
		if !ok {
			name = "Unknown"
		}
		rate := rates[studentID]
		row := core.PayrollRow{
			StudentID:   studentID,
			StudentName: name,
			Hours:       h,
			HourlyRate:  rate,
			Earnings:    h * rate,
		}
		report.Students = append(report.Students, row)
		report.TotalHours += row.Hours
		report.TotalEarnings += row.Earnings
	}

	return report, nil
}

// Balance computes one student's all-time position: hours from sessions with
// a qualifying attendance record, due at the current rate, minus every
// payment regardless of date.
func (s *ReportService) Balance(ctx context.Context, studentID string) (core.StudentBalance, error) {
	students, err := s.students.Load(ctx)
	if err != nil {
		return core.StudentBalance{}, err
	}
	var student *core.Student
	for i := range students {
		if students[i].ID == studentID {
			student = &students[i]
			break
		}
	}
	if student == nil {
		return core.StudentBalance{}, core.NotFound("Student")
	}

	sessions, err := s.sessions.Load(ctx)
	if err != nil {
		return core.StudentBalance{}, err
	}
	attendance, err := s.attendance.Load(ctx)
	if err != nil {
		return core.StudentBalance{}, err
	}
	payments, err := s.payments.Load(ctx)
	if err != nil {
		return core.StudentBalance{}, err
	}

	// One attendance row per (session, student) is guaranteed at creation,
	// so a set of qualifying session ids is enough.
	attended := make(map[string]bool)
	for _, a := range attendance {
		if a.StudentID == studentID && a.Status.Qualifies() {
			attended[a.SessionID] = true
		}
	}

	var totalHours float64
	for _, sess := range sessions {
		if attended[sess.ID] {
			totalHours += sess.HoursWorked
		}
	}

	var totalPaid float64
	for _, p := range payments {
		if p.StudentID == studentID {
			totalPaid += p.Amount
		}
	}

	totalDue := totalHours * student.HourlyRate
	return core.StudentBalance{
		StudentID:   student.ID,
		StudentName: student.Name,
		HourlyRate:  student.HourlyRate,
		TotalHours:  totalHours,
		TotalDue:    totalDue,
		TotalPaid:   totalPaid,
		Balance:     totalDue - totalPaid,
	}, nil
}
