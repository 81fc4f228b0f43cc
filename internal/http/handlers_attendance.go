package http

import (
	"net/http"

	"lezioni/internal/core"
	"lezioni/internal/service"
)

func (s *Server) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	filter := service.AttendanceFilter{
		SessionID: r.URL.Query().Get("session_id"),
		StudentID: r.URL.Query().Get("student_id"),
	}
	attendance, err := s.registry.Attendance.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, attendance)
}

func (s *Server) handleCreateAttendance(w http.ResponseWriter, r *http.Request) {
	var in core.AttendanceCreate
	if !decodeBody(w, r, &in) {
		return
	}
	attendance, err := s.registry.Attendance.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, attendance)
}

func (s *Server) handleBulkCreateAttendance(w http.ResponseWriter, r *http.Request) {
	var ins []core.AttendanceCreate
	if !decodeBody(w, r, &ins) {
		return
	}
	created, err := s.registry.Attendance.CreateBulk(r.Context(), ins)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleUpdateAttendance(w http.ResponseWriter, r *http.Request) {
	var patch core.AttendancePatch
	if !decodeBody(w, r, &patch) {
		return
	}
	attendance, err := s.registry.Attendance.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, attendance)
}
