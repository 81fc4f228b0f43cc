package core

type (
	// PayrollRow is one student's accumulated hours and earnings within a
	// payroll period. Earnings use the student's current hourly rate.
	PayrollRow struct {
		StudentID   string  `json:"studentId"`
		StudentName string  `json:"studentName"`
		Hours       float64 `json:"hours"`
		HourlyRate  float64 `json:"hourlyRate"`
		Earnings    float64 `json:"earnings"`
	}

	// PayrollReport covers [StartDate, EndDate] inclusive. Students with no
	// qualifying attendance in range are omitted, not listed with zeros.
	PayrollReport struct {
		StartDate     string       `json:"startDate"`
		EndDate       string       `json:"endDate"`
		Students      []PayrollRow `json:"students"`
		TotalHours    float64      `json:"totalHours"`
		TotalEarnings float64      `json:"totalEarnings"`
	}

	// StudentBalance is the all-time position of one student. Balance is
	// TotalDue - TotalPaid; negative means the student is in credit.
	StudentBalance struct {
		StudentID   string  `json:"studentId"`
		StudentName string  `json:"studentName"`
		HourlyRate  float64 `json:"hourlyRate"`
		TotalHours  float64 `json:"totalHours"`
		TotalDue    float64 `json:"totalDue"`
		TotalPaid   float64 `json:"totalPaid"`
		Balance     float64 `json:"balance"`
	}

	// DashboardSummary is the today/this-month snapshot, computed against the
	// server's wall clock at call time.
	DashboardSummary struct {
		Today           string    `json:"today"`
		DayOfWeek       string    `json:"dayOfWeek"`
		ActiveStudents  int       `json:"activeStudents"`
		TotalClasses    int       `json:"totalClasses"`
		TodaysClasses   []Class   `json:"todaysClasses"`
		TodaysSessions  []Session `json:"todaysSessions"`
		TotalHoursMonth float64   `json:"totalHoursMonth"`
		RecentPayments  []Payment `json:"recentPayments"`
	}
)
