package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/tagcenter/tagcenter/internal/domain"
)

// ─── Transactions API ───────────────────────────────────────────────────────
//
// POST   /api/transactions                    record (collection when PENDING + CASH/GPAY/EXP)
// GET    /api/transactions                    owner listing with filters
// GET    /api/transactions/vehicles           distinct vehicle numbers
// GET    /api/transactions/pending            vehicles that still owe
// GET    /api/transactions/pending/{vehicle}  one vehicle's balance
// GET    /api/transactions/types/{vehicle}    types a worker may enter
// PUT    /api/transactions/{id}/date          date correction
// DELETE /api/transactions/{id}               soft delete

type recordTransactionRequest struct {
	VehicleNumber   string                 `json:"vehicle_number"`
	Worker          string                 `json:"worker"`
	TransactionType domain.TransactionType `json:"transaction_type"`
	PaymentType     domain.PaymentType     `json:"payment_type"`
	Amount          decimal.Decimal        `json:"amount"`
}

func (s *Server) handleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req recordTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	receipt, err := s.svc.RecordTransaction(r.Context(), domain.Transaction{
		VehicleNumber:   req.VehicleNumber,
		Worker:          workerFrom(r, req.Worker),
		TransactionType: req.TransactionType,
		PaymentType:     req.PaymentType,
		Amount:          req.Amount,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
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

	txs, err := s.svc.ListTransactions(r.Context(), domain.TransactionFilter{
		Vehicle:     q.Get("vehicle"),
		Worker:      q.Get("worker"),
		PaymentType: domain.PaymentType(q.Get("payment_type")),
		From:        from,
		To:          to,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": txs,
		"count":        len(txs),
	})
}

func (s *Server) handleVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.svc.Vehicles(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if vehicles == nil {
		vehicles = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"vehicles": vehicles})
}

func (s *Server) handlePendingVehicles(w http.ResponseWriter, r *http.Request) {
	pending, err := s.statements.PendingVehicles(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	total := decimal.Zero
	for _, vp := range pending {
		total = total.Add(vp.Pending)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles": pending,
		"total":    total,
	})
}

func (s *Server) handleVehiclePending(w http.ResponseWriter, r *http.Request) {
	vehicle := chi.URLParam(r, "vehicle")
	raw, err := s.svc.PendingBalance(r.Context(), vehicle)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicle":         vehicle,
		"pending":         raw,
		"pending_clamped": domain.ClampPending(raw),
	})
}

func (s *Server) handleEnterableTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.svc.EnterableTransactionTypes(r.Context(), chi.URLParam(r, "vehicle"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"transaction_types": types,
		"payment_types":     domain.PaymentTypes,
	})
}

func (s *Server) handleCorrectDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CreatedAt time.Time `json:"created_at"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.svc.CorrectTransactionDate(r.Context(), chi.URLParam(r, "id"), req.CreatedAt); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteTransaction(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
