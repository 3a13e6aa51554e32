package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tagcenter/tagcenter/internal/app/statement"
)

// GET /api/statements/vehicle/{vehicle}          (?format=csv)
// GET /api/statements/worker/{worker}?from=&to=  (&format=csv)

func (s *Server) handleVehicleStatement(w http.ResponseWriter, r *http.Request) {
	st, err := s.statements.Vehicle(r.Context(), chi.URLParam(r, "vehicle"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if wantsCSV(r) {
		startCSV(w, "statement-"+st.Vehicle)
		if err := statement.WriteVehicleCSV(w, st); err != nil {
			log.Printf("[api] write vehicle statement: %v", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleWorkerStatement(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := parseTimeParam(q.Get("from"), false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from: "+err.Error())
		return
	}
	to, err := parseTimeParam(q.Get("to"), true)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to: "+err.Error())
		return
	}

	st, err := s.statements.Worker(r.Context(), chi.URLParam(r, "worker"), from, to)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if wantsCSV(r) {
		startCSV(w, "statement-"+st.Worker)
		if err := statement.WriteWorkerCSV(w, st); err != nil {
			log.Printf("[api] write worker statement: %v", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func wantsCSV(r *http.Request) bool {
	return r.URL.Query().Get("format") == "csv"
}

func startCSV(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".csv"))
	w.WriteHeader(http.StatusOK)
}
