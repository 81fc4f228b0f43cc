package http

import (
	"fmt"
	"net/http"

	"lezioni/internal/export"
)

func (s *Server) handlePayrollReport(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "start_date and end_date are required")
		return
	}

	report, err := s.registry.Reports.Payroll(r.Context(), startDate, endDate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handlePayrollExport serves the payroll report as a downloadable workbook.
func (s *Server) handlePayrollExport(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "start_date and end_date are required")
		return
	}

	report, err := s.registry.Reports.Payroll(r.Context(), startDate, endDate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	buf, err := export.PayrollWorkbook(report)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	filename := fmt.Sprintf("payroll_%s_%s.xlsx", startDate, endDate)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleStudentBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := s.registry.Reports.Balance(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := s.registry.Dashboard.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
