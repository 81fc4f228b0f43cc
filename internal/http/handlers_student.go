package http

import (
	"net/http"

	"lezioni/internal/core"
)

func (s *Server) handleListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := s.registry.Students.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func (s *Server) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := s.registry.Students.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (s *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	var in core.StudentCreate
	if !decodeBody(w, r, &in) {
		return
	}
	student, err := s.registry.Students.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (s *Server) handleUpdateStudent(w http.ResponseWriter, r *http.Request) {
	var patch core.StudentPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	student, err := s.registry.Students.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (s *Server) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	student, err := s.registry.Students.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Student deleted",
		"student": student,
	})
}
