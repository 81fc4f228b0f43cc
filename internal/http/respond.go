package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"lezioni/internal/core"
)

// detailBody is the error envelope every failing endpoint returns.
type detailBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailBody{Detail: detail})
}

// writeServiceError maps service errors onto HTTP statuses: missing records
// are 404, the duplicate-attendance rule is 400, validation problems are 422
// and anything else is a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case core.IsNotFound(err):
		writeDetail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, core.ErrAttendanceExists):
		writeDetail(w, http.StatusBadRequest, "Attendance already recorded")
	case isValidationError(err):
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal server error")
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		core.ErrEmptyName,
		core.ErrEmptyDate,
		core.ErrNegativeRate,
		core.ErrInvalidDayOfWeek,
		core.ErrInvalidStatus,
		core.ErrInvalidTime,
		core.ErrMissingReference,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// decodeBody parses the request body into v, reporting malformed payloads as
// 422 like every other validation failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return false
	}
	return true
}
