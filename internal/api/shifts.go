package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tagcenter/tagcenter/internal/domain"
)

// ─── Shifts API ─────────────────────────────────────────────────────────────
//
// POST /api/shifts/open    worker login opens a shift
// POST /api/shifts/logout  end the session, no shift record
// POST /api/shifts/close   reconcile and write the shift record
// GET  /api/shifts         shift records (?worker=)
// GET  /api/shifts/{id}    one shift record
// GET  /api/activities     worker sessions

type sessionRequest struct {
	Worker string    `json:"worker"`
	At     time.Time `json:"at"`
}

type closeShiftRequest struct {
	Worker       string               `json:"worker"`
	ShiftType    domain.ShiftType     `json:"shift_type"`
	CloseTime    time.Time            `json:"close_time"`
	BankBalances []domain.BankBalance `json:"bank_balances"`
}

func (s *Server) handleOpenShift(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	activity, err := s.svc.OpenShift(r.Context(), workerFrom(r, req.Worker), req.At)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	activity, err := s.svc.Logout(r.Context(), workerFrom(r, req.Worker), req.At)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

func (s *Server) handleCloseShift(w http.ResponseWriter, r *http.Request) {
	var req closeShiftRequest
	if !decodeBody(w, r, &req) {
		return
	}
	record, err := s.svc.CloseShift(r.Context(), workerFrom(r, req.Worker), req.ShiftType, req.CloseTime, req.BankBalances)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleListShiftRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.svc.ListShiftRecords(r.Context(), r.URL.Query().Get("worker"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if records == nil {
		records = []domain.ShiftRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"shifts": records,
		"count":  len(records),
	})
}

func (s *Server) handleGetShiftRecord(w http.ResponseWriter, r *http.Request) {
	record, err := s.svc.GetShiftRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.svc.ListActivities(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"activities": activities})
}
