// Package observability records what the reconciliation service does.
//
// This provides:
//   - Operation spans (record → collect → close shift) kept in a ring buffer
//   - Prometheus counters for transactions, collections and shift closes
//   - Per-operation latency and error metrics
package observability

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ═══════════════════════════════════════════════════════════════════════════
// Operation Spans
// ═══════════════════════════════════════════════════════════════════════════

// Span is one timed service operation.
type Span struct {
	TraceID   string            `json:"trace_id"`
	SpanID    string            `json:"span_id"`
	ParentID  string            `json:"parent_id,omitempty"`
	Operation string            `json:"operation"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
	Duration  time.Duration     `json:"duration,omitempty"`
	Status    SpanStatus        `json:"status"`
	Attrs     map[string]string `json:"attrs,omitempty"`
}

// SpanStatus indicates success/failure.
type SpanStatus int

const (
	SpanOK SpanStatus = iota
	SpanError
)

// ─── Tracer ─────────────────────────────────────────────────────────────────

// Tracer keeps the most recent spans in memory for the /debug/spans view.
// A nil *Tracer is valid and records nothing.
type Tracer struct {
	mu       sync.Mutex
	spans    []Span
	maxSpans int
	enabled  bool
}

// TracerConfig configures the tracer.
type TracerConfig struct {
	Enabled  bool
	MaxSpans int // ring buffer size (default 10_000)
}

// DefaultTracerConfig returns production defaults.
func DefaultTracerConfig() TracerConfig {
	return TracerConfig{
		Enabled:  true,
		MaxSpans: 10_000,
	}
}

// NewTracer creates a new tracer.
func NewTracer(cfg TracerConfig) *Tracer {
	if cfg.MaxSpans <= 0 {
		cfg.MaxSpans = DefaultTracerConfig().MaxSpans
	}
	return &Tracer{
		spans:    make([]Span, 0, min(cfg.MaxSpans, 1024)),
		maxSpans: cfg.MaxSpans,
		enabled:  cfg.Enabled,
	}
}

// StartSpan begins a span for operation. The caller must call EndSpan.
func (t *Tracer) StartSpan(ctx context.Context, operation string, attrs map[string]string) *Span {
	if t == nil || !t.enabled {
		return &Span{Operation: operation, StartTime: time.Now()}
	}
	return &Span{
		TraceID:   traceIDFromContext(ctx),
		SpanID:    generateID(),
		ParentID:  spanIDFromContext(ctx),
		Operation: operation,
		StartTime: time.Now(),
		Status:    SpanOK,
		Attrs:     attrs,
	}
}

// EndSpan completes a span, records its metrics and keeps it.
func (t *Tracer) EndSpan(span *Span, err error) {
	if span == nil {
		return
	}
	span.EndTime = time.Now()
	span.Duration = span.EndTime.Sub(span.StartTime)

	OperationDuration.WithLabelValues(span.Operation).Observe(span.Duration.Seconds())
	if err != nil {
		OperationErrors.WithLabelValues(span.Operation).Inc()
	}

	if t == nil || !t.enabled {
		return
	}
	if err != nil {
		span.Status = SpanError
		if span.Attrs == nil {
			span.Attrs = make(map[string]string)
		}
		span.Attrs["error"] = err.Error()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Ring buffer: overwrite oldest if at capacity
	if len(t.spans) >= t.maxSpans {
		t.spans = t.spans[1:]
	}
	t.spans = append(t.spans, *span)
}

// Spans returns a copy of the most recent spans, oldest first.
func (t *Tracer) Spans(limit int) []Span {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if limit <= 0 || limit > len(t.spans) {
		limit = len(t.spans)
	}
	start := len(t.spans) - limit
	out := make([]Span, limit)
	copy(out, t.spans[start:])
	return out
}

// SpanCount returns the number of recorded spans.
func (t *Tracer) SpanCount() int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.spans)
}

// ─── Context Helpers ────────────────────────────────────────────────────────

type contextKey string

const (
	traceIDKey contextKey = "tagcenter-trace-id"
	spanIDKey  contextKey = "tagcenter-span-id"
)

// WithTraceID returns a context carrying the given trace ID (the HTTP
// request ID, typically).
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// WithSpanID returns a context with the given parent span ID.
func WithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, spanIDKey, spanID)
}

func traceIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(traceIDKey).(string); ok && v != "" {
		return v
	}
	return generateID()
}

func spanIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(spanIDKey).(string); ok {
		return v
	}
	return ""
}

var spanCounter atomic.Int64

func generateID() string {
	n := spanCounter.Add(1)
	return fmt.Sprintf("%s-%d", time.Now().Format("20060102150405"), n)
}

// ═══════════════════════════════════════════════════════════════════════════
// Prometheus Metrics
// ═══════════════════════════════════════════════════════════════════════════

// ─── Transaction Metrics ────────────────────────────────────────────────────

// TransactionsRecorded counts persisted transactions, cleared markers included.
var TransactionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tagcenter",
	Subsystem: "transactions",
	Name:      "recorded_total",
	Help:      "Total transactions recorded by transaction and payment type.",
}, []string{"transaction_type", "payment_type"})

// Collections counts pending collections by payment type.
var Collections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tagcenter",
	Subsystem: "pending",
	Name:      "collections_total",
	Help:      "Total pending collections by payment type.",
}, []string{"payment_type"})

// CollectedAmount sums the amounts collected against pending debts.
var CollectedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "tagcenter",
	Subsystem: "pending",
	Name:      "collected_amount_total",
	Help:      "Total amount collected against pending debts.",
})

// ─── Shift Metrics ──────────────────────────────────────────────────────────

// ShiftsOpened counts worker logins that opened a shift.
var ShiftsOpened = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "tagcenter",
	Subsystem: "shifts",
	Name:      "opened_total",
	Help:      "Total shifts opened.",
})

// ShiftsClosed counts shift records written.
var ShiftsClosed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tagcenter",
	Subsystem: "shifts",
	Name:      "closed_total",
	Help:      "Total shifts closed by shift type.",
}, []string{"shift_type"})

// ─── Operation Metrics ──────────────────────────────────────────────────────

// OperationDuration tracks service operation latency.
var OperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "tagcenter",
	Subsystem: "service",
	Name:      "operation_duration_seconds",
	Help:      "Service operation latency in seconds.",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
}, []string{"operation"})

// OperationErrors counts failed service operations.
var OperationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tagcenter",
	Subsystem: "service",
	Name:      "operation_errors_total",
	Help:      "Total failed service operations.",
}, []string{"operation"})
