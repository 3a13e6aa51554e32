package api

import (
	"net/http"

	"github.com/tagcenter/tagcenter/internal/domain"
)

// ─── Transports API ─────────────────────────────────────────────────────────
//
// GET    /api/transports                       groups and their vehicles
// POST   /api/transports                       add a vehicle to a group
// DELETE /api/transports?name=&vehicle=        remove a vehicle
// GET    /api/transports/pending               pending roll-up per group

type transportVehicleRequest struct {
	Name    string `json:"name"`
	Vehicle string `json:"vehicle"`
}

func (s *Server) handleListTransports(w http.ResponseWriter, r *http.Request) {
	transports, err := s.svc.ListTransports(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if transports == nil {
		transports = []domain.Transport{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"transports": transports})
}

func (s *Server) handleAddTransportVehicle(w http.ResponseWriter, r *http.Request) {
	var req transportVehicleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.svc.AddTransportVehicle(r.Context(), req.Name, req.Vehicle); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (s *Server) handleRemoveTransportVehicle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := s.svc.RemoveTransportVehicle(r.Context(), q.Get("name"), q.Get("vehicle")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTransportPending(w http.ResponseWriter, r *http.Request) {
	rollup, err := s.statements.Transports(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"transports": rollup})
}
