package http

import (
	"net/http"

	"lezioni/internal/core"
)

func (s *Server) handleListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := s.registry.Classes.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, classes)
}

func (s *Server) handleGetClass(w http.ResponseWriter, r *http.Request) {
	class, err := s.registry.Classes.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, class)
}

func (s *Server) handleCreateClass(w http.ResponseWriter, r *http.Request) {
	var in core.ClassCreate
	if !decodeBody(w, r, &in) {
		return
	}
	class, err := s.registry.Classes.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, class)
}

func (s *Server) handleUpdateClass(w http.ResponseWriter, r *http.Request) {
	var patch core.ClassPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	class, err := s.registry.Classes.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, class)
}

func (s *Server) handleDeleteClass(w http.ResponseWriter, r *http.Request) {
	class, err := s.registry.Classes.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Class deleted",
		"class":   class,
	})
}
