package http

import (
	"net/http"

	"lezioni/internal/core"
	"lezioni/internal/service"
)

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	filter := service.SessionFilter{
		Date:    r.URL.Query().Get("date"),
		ClassID: r.URL.Query().Get("class_id"),
	}
	sessions, err := s.registry.Sessions.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.registry.Sessions.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var in core.SessionCreate
	if !decodeBody(w, r, &in) {
		return
	}
	session, err := s.registry.Sessions.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	var patch core.SessionPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	session, err := s.registry.Sessions.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.registry.Sessions.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Session deleted",
		"session": session,
	})
}
