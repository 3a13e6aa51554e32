// Package api provides the HTTP server for the service center back office.
// Workers record transactions and close shifts; the owner reviews
// transactions, shift records, transports and statements.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tagcenter/tagcenter/internal/app/reconcile"
	"github.com/tagcenter/tagcenter/internal/app/statement"
	"github.com/tagcenter/tagcenter/internal/domain"
	"github.com/tagcenter/tagcenter/internal/infra/observability"
)

// Version is reported by /api/version and the CLI.
const Version = "0.1.0"

// WorkerHeader carries the authenticated worker name, set by the
// authentication proxy in front of this server.
const WorkerHeader = "X-Worker"

// Server is the tagcenter HTTP API server.
type Server struct {
	svc            *reconcile.Service
	statements     *statement.Builder
	tracer         *observability.Tracer
	metricsEnabled bool
	requestTimeout time.Duration
}

// NewServer creates a new API server. tracer may be nil.
func NewServer(svc *reconcile.Service, statements *statement.Builder, tracer *observability.Tracer) *Server {
	return &Server{
		svc:            svc,
		statements:     statements,
		tracer:         tracer,
		requestTimeout: 30 * time.Second,
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetRequestTimeout bounds the handling time of every request.
func (s *Server) SetRequestTimeout(d time.Duration) {
	if d > 0 {
		s.requestTimeout = d
	}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.requestTimeout))
	r.Use(corsMiddleware)
	r.Use(traceMiddleware)
	r.Use(workerMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": Version,
		})
	})

	r.Route("/api/transactions", func(r chi.Router) {
		r.Post("/", s.handleRecordTransaction)
		r.Get("/", s.handleListTransactions)
		r.Get("/vehicles", s.handleVehicles)
		r.Get("/pending", s.handlePendingVehicles)
		r.Get("/pending/{vehicle}", s.handleVehiclePending)
		r.Get("/types/{vehicle}", s.handleEnterableTypes)
		r.Put("/{id}/date", s.handleCorrectDate)
		r.Delete("/{id}", s.handleDeleteTransaction)
	})

	r.Route("/api/shifts", func(r chi.Router) {
		r.Post("/open", s.handleOpenShift)
		r.Post("/logout", s.handleLogout)
		r.Post("/close", s.handleCloseShift)
		r.Get("/", s.handleListShiftRecords)
		r.Get("/{id}", s.handleGetShiftRecord)
	})
	r.Get("/api/activities", s.handleListActivities)

	r.Route("/api/transports", func(r chi.Router) {
		r.Get("/", s.handleListTransports)
		r.Post("/", s.handleAddTransportVehicle)
		r.Delete("/", s.handleRemoveTransportVehicle)
		r.Get("/pending", s.handleTransportPending)
	})

	r.Route("/api/statements", func(r chi.Router) {
		r.Get("/vehicle/{vehicle}", s.handleVehicleStatement)
		r.Get("/worker/{worker}", s.handleWorkerStatement)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	if s.tracer != nil {
		r.Get("/debug/spans", s.handleSpans)
	}

	return r
}

func (s *Server) handleSpans(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count": s.tracer.SpanCount(),
		"spans": s.tracer.Spans(limit),
	})
}

// ─── Middleware ─────────────────────────────────────────────────────────────

// corsMiddleware adds CORS headers for the browser client.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+WorkerHeader)
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// traceMiddleware makes the request ID the trace ID of service spans.
func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			r = r.WithContext(observability.WithTraceID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

type workerKey struct{}

func workerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if worker := strings.TrimSpace(r.Header.Get(WorkerHeader)); worker != "" {
			r = r.WithContext(context.WithValue(r.Context(), workerKey{}, worker))
		}
		next.ServeHTTP(w, r)
	})
}

// workerFrom returns the header identity when present, else fallback.
func workerFrom(r *http.Request, fallback string) string {
	if worker, ok := r.Context().Value(workerKey{}).(string); ok {
		return worker
	}
	return fallback
}

// ─── Responses ──────────────────────────────────────────────────────────────

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    errorType(status),
		},
	})
}

func errorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	}
	return "error"
}

// writeServiceError maps a service error onto its HTTP status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("[api] %s %s failed: %v", r.Method, r.URL.Path, err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeBody decodes a JSON request body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// parseTimeParam accepts RFC 3339 or a plain date. A plain date used as an
// upper bound covers the whole day.
func parseTimeParam(v string, endOfDay bool) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
