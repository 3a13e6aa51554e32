package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tagcenter/tagcenter/internal/app/reconcile"
	"github.com/tagcenter/tagcenter/internal/app/statement"
	"github.com/tagcenter/tagcenter/internal/infra/observability"
	"github.com/tagcenter/tagcenter/internal/infra/sqlite"
)

// ─── Helpers ────────────────────────────────────────────────────────────────

func setupServer(t *testing.T) http.Handler {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tracer := observability.NewTracer(observability.DefaultTracerConfig())
	srv := NewServer(reconcile.New(db, tracer), statement.NewBuilder(db), tracer)
	srv.EnableMetrics()
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}, worker string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if worker != "" {
		req.Header.Set(WorkerHeader, worker)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return resp
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func txBody(vehicle, txType, payType string, amount int) map[string]interface{} {
	return map[string]interface{}{
		"vehicle_number":   vehicle,
		"transaction_type": txType,
		"payment_type":     payType,
		"amount":           amount,
	}
}

// ─── Basic Routes ───────────────────────────────────────────────────────────

func TestHealthAndVersion(t *testing.T) {
	h := setupServer(t)

	w := do(t, h, http.MethodGet, "/health", nil, "")
	expectStatus(t, w, http.StatusOK)
	if decode(t, w)["status"] != "ok" {
		t.Errorf("health status = %v", decode(t, w)["status"])
	}

	w = do(t, h, http.MethodGet, "/api/version", nil, "")
	expectStatus(t, w, http.StatusOK)
	if decode(t, w)["version"] != Version {
		t.Errorf("version = %v, want %s", decode(t, w)["version"], Version)
	}
}

// ─── Transactions ───────────────────────────────────────────────────────────

func TestRecordAndCollect(t *testing.T) {
	h := setupServer(t)

	w := do(t, h, http.MethodPost, "/api/transactions", txBody("TN01AB1234", "HDFC BANK", "PENDING", 500), "ravi")
	expectStatus(t, w, http.StatusCreated)

	w = do(t, h, http.MethodPost, "/api/transactions", txBody("tn01ab1234", "PENDING", "CASH", 200), "ravi")
	expectStatus(t, w, http.StatusCreated)
	resp := decode(t, w)
	if resp["cleared_id"] == nil || resp["cleared_id"] == "" {
		t.Errorf("collection response missing cleared_id: %v", resp)
	}
	if resp["new_pending"] != "300" {
		t.Errorf("new_pending = %v, want 300", resp["new_pending"])
	}

	w = do(t, h, http.MethodGet, "/api/transactions/pending/TN01AB1234", nil, "")
	expectStatus(t, w, http.StatusOK)
	resp = decode(t, w)
	if resp["pending"] != "300" || resp["pending_clamped"] != "300" {
		t.Errorf("pending = %v / %v, want 300", resp["pending"], resp["pending_clamped"])
	}

	w = do(t, h, http.MethodGet, "/api/transactions/pending", nil, "")
	expectStatus(t, w, http.StatusOK)
	if decode(t, w)["total"] != "300" {
		t.Errorf("rollup total = %v, want 300", decode(t, w)["total"])
	}

	w = do(t, h, http.MethodGet, "/api/transactions/types/TN01AB1234", nil, "")
	expectStatus(t, w, http.StatusOK)
	types := decode(t, w)["transaction_types"].([]interface{})
	if types[0] != "PENDING" {
		t.Errorf("types[0] = %v, want PENDING while the vehicle owes", types[0])
	}
}

func TestRecordTransaction_Errors(t *testing.T) {
	h := setupServer(t)

	tests := []struct {
		name string
		body interface{}
		want int
	}{
		{"invalid json", "{", http.StatusBadRequest},
		{"missing vehicle", txBody("", "CASH", "CASH", 10), http.StatusBadRequest},
		{"bad payment type", txBody("V1", "CASH", "CHEQUE", 10), http.StatusBadRequest},
		{"negative amount", txBody("V1", "CASH", "CASH", -5), http.StatusBadRequest},
		{"cleared marker", txBody("V1", "PENDING_CLEARED", "CASH", 10), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/api/transactions", tt.body, "ravi")
			expectStatus(t, w, tt.want)
			errObj, ok := decode(t, w)["error"].(map[string]interface{})
			if !ok || errObj["type"] != "invalid_request" {
				t.Errorf("error body = %s", w.Body.String())
			}
		})
	}
}

func TestWorkerHeaderOverridesBody(t *testing.T) {
	h := setupServer(t)

	body := txBody("V1", "CASH", "CASH", 10)
	body["worker"] = "mallory"
	w := do(t, h, http.MethodPost, "/api/transactions", body, "ravi")
	expectStatus(t, w, http.StatusCreated)

	tx := decode(t, w)["transaction"].(map[string]interface{})
	if tx["worker"] != "ravi" {
		t.Errorf("worker = %v, want ravi from header", tx["worker"])
	}

	// Without the header the body value is used.
	w = do(t, h, http.MethodPost, "/api/transactions", body, "")
	expectStatus(t, w, http.StatusCreated)
	tx = decode(t, w)["transaction"].(map[string]interface{})
	if tx["worker"] != "mallory" {
		t.Errorf("worker = %v, want mallory from body", tx["worker"])
	}
}

func TestListTransactions(t *testing.T) {
	h := setupServer(t)
	do(t, h, http.MethodPost, "/api/transactions", txBody("TN01AB1234", "CASH", "CASH", 10), "ravi")
	do(t, h, http.MethodPost, "/api/transactions", txBody("KA05XY0001", "CASH", "GPAY/PHONE PAY", 20), "anu")

	w := do(t, h, http.MethodGet, "/api/transactions?vehicle=tn01", nil, "")
	expectStatus(t, w, http.StatusOK)
	if decode(t, w)["count"] != float64(1) {
		t.Errorf("count = %v, want 1", decode(t, w)["count"])
	}

	w = do(t, h, http.MethodGet, "/api/transactions?payment_type=GPAY/PHONE%20PAY", nil, "")
	expectStatus(t, w, http.StatusOK)
	if decode(t, w)["count"] != float64(1) {
		t.Errorf("count = %v, want 1", decode(t, w)["count"])
	}

	w = do(t, h, http.MethodGet, "/api/transactions?to=2000-01-01", nil, "")
	expectStatus(t, w, http.StatusOK)
	if decode(t, w)["count"] != float64(0) {
		t.Errorf("count = %v, want 0", decode(t, w)["count"])
	}

	w = do(t, h, http.MethodGet, "/api/transactions?from=yesterday", nil, "")
	expectStatus(t, w, http.StatusBadRequest)

	w = do(t, h, http.MethodGet, "/api/transactions/vehicles", nil, "")
	expectStatus(t, w, http.StatusOK)
	if got := len(decode(t, w)["vehicles"].([]interface{})); got != 2 {
		t.Errorf("vehicles = %d, want 2", got)
	}
}

func TestCorrectDateAndDelete(t *testing.T) {
	h := setupServer(t)

	w := do(t, h, http.MethodPost, "/api/transactions", txBody("V1", "CASH", "CASH", 10), "ravi")
	id := decode(t, w)["transaction"].(map[string]interface{})["id"].(string)

	w = do(t, h, http.MethodPut, "/api/transactions/"+id+"/date",
		map[string]string{"created_at": "2024-12-31T10:00:00Z"}, "")
	expectStatus(t, w, http.StatusOK)

	w = do(t, h, http.MethodGet, "/api/transactions?to=2024-12-31", nil, "")
	if decode(t, w)["count"] != float64(1) {
		t.Errorf("corrected row not found by date: %s", w.Body.String())
	}

	w = do(t, h, http.MethodPut, "/api/transactions/missing/date",
		map[string]string{"created_at": "2024-12-31T10:00:00Z"}, "")
	expectStatus(t, w, http.StatusNotFound)

	w = do(t, h, http.MethodDelete, "/api/transactions/"+id, nil, "")
	expectStatus(t, w, http.StatusNoContent)

	w = do(t, h, http.MethodDelete, "/api/transactions/"+id, nil, "")
	expectStatus(t, w, http.StatusNotFound)
}

// ─── Shifts ─────────────────────────────────────────────────────────────────

func TestCloseShift_NoActiveShift(t *testing.T) {
	h := setupServer(t)

	w := do(t, h, http.MethodPost, "/api/shifts/close", map[string]interface{}{"shift_type": "DAY"}, "ravi")
	expectStatus(t, w, http.StatusNotFound)

	w = do(t, h, http.MethodGet, "/api/shifts", nil, "")
	if decode(t, w)["count"] != float64(0) {
		t.Errorf("shift records written without an open shift: %s", w.Body.String())
	}
}

func TestShiftLifecycle(t *testing.T) {
	h := setupServer(t)

	w := do(t, h, http.MethodPost, "/api/shifts/open", map[string]interface{}{}, "ravi")
	expectStatus(t, w, http.StatusCreated)

	w = do(t, h, http.MethodPost, "/api/shifts/open", map[string]interface{}{}, "ravi")
	expectStatus(t, w, http.StatusConflict)

	do(t, h, http.MethodPost, "/api/transactions", txBody("V1", "CASH", "GPAY/PHONE PAY", 100), "ravi")

	w = do(t, h, http.MethodPost, "/api/shifts/close", map[string]interface{}{
		"shift_type": "NIGHT",
		"bank_balances": []map[string]interface{}{
			{"name": "CASH", "balance": 1000},
			{"name": "HDFC BANK", "account": "0042", "balance": 2500},
		},
	}, "ravi")
	expectStatus(t, w, http.StatusCreated)
	rec := decode(t, w)
	totals := rec["totals_by_payment_type"].(map[string]interface{})
	if totals["CASH"] != "900" || totals["GPAY/PHONE PAY"] != "100" {
		t.Errorf("totals = %v, want CASH 900 and GPAY 100", totals)
	}

	w = do(t, h, http.MethodGet, "/api/shifts/"+rec["id"].(string), nil, "")
	expectStatus(t, w, http.StatusOK)

	w = do(t, h, http.MethodGet, "/api/shifts/missing", nil, "")
	expectStatus(t, w, http.StatusNotFound)

	w = do(t, h, http.MethodGet, "/api/shifts?worker=ravi", nil, "")
	if decode(t, w)["count"] != float64(1) {
		t.Errorf("shift count = %v, want 1", decode(t, w)["count"])
	}

	w = do(t, h, http.MethodGet, "/api/activities", nil, "")
	expectStatus(t, w, http.StatusOK)
	if got := len(decode(t, w)["activities"].([]interface{})); got != 1 {
		t.Errorf("activities = %d, want 1", got)
	}
}

func TestCloseShift_BadShiftType(t *testing.T) {
	h := setupServer(t)
	do(t, h, http.MethodPost, "/api/shifts/open", map[string]interface{}{}, "ravi")

	w := do(t, h, http.MethodPost, "/api/shifts/close", map[string]interface{}{"shift_type": "EVENING"}, "ravi")
	expectStatus(t, w, http.StatusBadRequest)
}

func TestLogout(t *testing.T) {
	h := setupServer(t)

	w := do(t, h, http.MethodPost, "/api/shifts/logout", map[string]interface{}{}, "ravi")
	expectStatus(t, w, http.StatusNotFound)

	do(t, h, http.MethodPost, "/api/shifts/open", map[string]interface{}{}, "ravi")
	w = do(t, h, http.MethodPost, "/api/shifts/logout", map[string]interface{}{}, "ravi")
	expectStatus(t, w, http.StatusOK)
	if decode(t, w)["logout_time"] == nil {
		t.Errorf("logout_time not set: %s", w.Body.String())
	}
}

// ─── Transports & Statements ────────────────────────────────────────────────

func TestTransports(t *testing.T) {
	h := setupServer(t)
	do(t, h, http.MethodPost, "/api/transactions", txBody("TN01AB1234", "CASH", "PENDING", 250), "ravi")

	add := map[string]string{"name": "KPN", "vehicle": "TN01AB1234"}
	expectStatus(t, do(t, h, http.MethodPost, "/api/transports", add, ""), http.StatusCreated)
	expectStatus(t, do(t, h, http.MethodPost, "/api/transports", add, ""), http.StatusConflict)
	expectStatus(t, do(t, h, http.MethodPost, "/api/transports", map[string]string{"vehicle": "V"}, ""), http.StatusBadRequest)

	w := do(t, h, http.MethodGet, "/api/transports", nil, "")
	expectStatus(t, w, http.StatusOK)
	if got := len(decode(t, w)["transports"].([]interface{})); got != 1 {
		t.Errorf("transports = %d, want 1", got)
	}

	w = do(t, h, http.MethodGet, "/api/transports/pending", nil, "")
	expectStatus(t, w, http.StatusOK)
	group := decode(t, w)["transports"].([]interface{})[0].(map[string]interface{})
	if group["total"] != "250" {
		t.Errorf("transport pending = %v, want 250", group["total"])
	}

	expectStatus(t, do(t, h, http.MethodDelete, "/api/transports?name=KPN&vehicle=tn01ab1234", nil, ""), http.StatusNoContent)
	expectStatus(t, do(t, h, http.MethodDelete, "/api/transports?name=KPN&vehicle=tn01ab1234", nil, ""), http.StatusNotFound)
}

func TestStatements(t *testing.T) {
	h := setupServer(t)
	do(t, h, http.MethodPost, "/api/transactions", txBody("V1", "HDFC BANK", "PENDING", 500), "ravi")
	do(t, h, http.MethodPost, "/api/transactions", txBody("V1", "PENDING", "CASH", 200), "ravi")

	w := do(t, h, http.MethodGet, "/api/statements/vehicle/V1", nil, "")
	expectStatus(t, w, http.StatusOK)
	resp := decode(t, w)
	if len(resp["transactions"].([]interface{})) != 2 || resp["pending_clamped"] != "300" {
		t.Errorf("vehicle statement = %s", w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/api/statements/vehicle/V1?format=csv", nil, "")
	expectStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if !strings.Contains(w.Body.String(), "PENDING,300.00") {
		t.Errorf("csv missing pending line:\n%s", w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/api/statements/worker/ravi", nil, "")
	expectStatus(t, w, http.StatusOK)
	if decode(t, w)["total"] != "700" {
		t.Errorf("worker statement total = %v, want 700", decode(t, w)["total"])
	}

	w = do(t, h, http.MethodGet, "/api/statements/worker/ravi?from=bad", nil, "")
	expectStatus(t, w, http.StatusBadRequest)
}

// ─── Observability ──────────────────────────────────────────────────────────

func TestMetricsAndSpans(t *testing.T) {
	h := setupServer(t)
	do(t, h, http.MethodPost, "/api/transactions", txBody("V1", "CASH", "CASH", 10), "ravi")

	w := do(t, h, http.MethodGet, "/metrics", nil, "")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "tagcenter_transactions_recorded_total") {
		t.Error("metrics missing tagcenter_transactions_recorded_total")
	}

	w = do(t, h, http.MethodGet, "/debug/spans", nil, "")
	expectStatus(t, w, http.StatusOK)
	if decode(t, w)["count"].(float64) < 1 {
		t.Errorf("expected at least one span: %s", w.Body.String())
	}
}
