package http

import (
	"net/http"

	"lezioni/internal/core"
)

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.registry.Payments.List(r.Context(), r.URL.Query().Get("student_id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (s *Server) handleGetPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := s.registry.Payments.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	var in core.PaymentCreate
	if !decodeBody(w, r, &in) {
		return
	}
	payment, err := s.registry.Payments.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (s *Server) handleUpdatePayment(w http.ResponseWriter, r *http.Request) {
	var patch core.PaymentPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	payment, err := s.registry.Payments.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (s *Server) handleDeletePayment(w http.ResponseWriter, r *http.Request) {
	payment, err := s.registry.Payments.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Payment deleted",
		"payment": payment,
	})
}
