// Package http exposes the record-keeping API over JSON.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"lezioni/internal/log"
	"lezioni/internal/service"
)

type contextKey string

const requestIDKey contextKey = "request_id"

type Server struct {
	http.Server
	registry *service.Registry

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, registry *service.Registry) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		registry: registry,
	}

	mux.HandleFunc("GET /healthz", handleHealth)

	mux.HandleFunc("GET /api/students", s.handleListStudents)
	mux.HandleFunc("POST /api/students", s.handleCreateStudent)
	mux.HandleFunc("GET /api/students/{id}", s.handleGetStudent)
	mux.HandleFunc("PUT /api/students/{id}", s.handleUpdateStudent)
	mux.HandleFunc("DELETE /api/students/{id}", s.handleDeleteStudent)

	mux.HandleFunc("GET /api/classes", s.handleListClasses)
	mux.HandleFunc("POST /api/classes", s.handleCreateClass)
	mux.HandleFunc("GET /api/classes/{id}", s.handleGetClass)
	mux.HandleFunc("PUT /api/classes/{id}", s.handleUpdateClass)
	mux.HandleFunc("DELETE /api/classes/{id}", s.handleDeleteClass)

	mux.HandleFunc("GET /api/sessions", s.handleListSessions)
	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("PUT /api/sessions/{id}", s.handleUpdateSession)
	mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDeleteSession)

	mux.HandleFunc("GET /api/attendance", s.handleListAttendance)
	mux.HandleFunc("POST /api/attendance", s.handleCreateAttendance)
	mux.HandleFunc("POST /api/attendance/bulk", s.handleBulkCreateAttendance)
	mux.HandleFunc("PUT /api/attendance/{id}", s.handleUpdateAttendance)

	mux.HandleFunc("GET /api/payments", s.handleListPayments)
	mux.HandleFunc("POST /api/payments", s.handleCreatePayment)
	mux.HandleFunc("GET /api/payments/{id}", s.handleGetPayment)
	mux.HandleFunc("PUT /api/payments/{id}", s.handleUpdatePayment)
	mux.HandleFunc("DELETE /api/payments/{id}", s.handleDeletePayment)

	mux.HandleFunc("GET /api/reports/payroll", s.handlePayrollReport)
	mux.HandleFunc("GET /api/reports/payroll/export", s.handlePayrollExport)
	mux.HandleFunc("GET /api/reports/student-balance/{id}", s.handleStudentBalance)

	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)

	s.Handler = s.withMiddleware(mux)
	return s
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// withMiddleware tags each request with an id, sets the security headers and
// logs start/completion with timing.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldRemote, r.RemoteAddr)

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		slog.InfoContext(ctx, "Request completed",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatus, rw.statusCode,
			log.FieldDuration, time.Since(start).Milliseconds())
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
