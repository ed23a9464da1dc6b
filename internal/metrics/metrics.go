// Package metrics exposes Prometheus collectors for the bill service.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Settlement outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics owns a private registry and the collectors registered on it.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	handler      http.Handler
	rpcTotal     *prometheus.CounterVec
	rpcDuration  *prometheus.HistogramVec
	settlements  *prometheus.CounterVec
	receiptItems *prometheus.CounterVec
}

// New creates the registry and registers all collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	rpcTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "patungan_rpc_requests_total",
		Help: "RPC calls partitioned by procedure and Connect code.",
	}, []string{"procedure", "code"})
	rpcDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "patungan_rpc_duration_seconds",
		Help:    "Duration in seconds of RPC calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"procedure"})
	settlements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "patungan_settlements_total",
		Help: "Settlement computations partitioned by split strategy and outcome.",
	}, []string{"strategy", "outcome"})
	receiptItems := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "patungan_receipt_items_total",
		Help: "Receipt items proposed for import, partitioned by outcome.",
	}, []string{"outcome"})
	registry.MustRegister(rpcTotal, rpcDuration, settlements, receiptItems)

	return &Metrics{
		registry:     registry,
		handler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		rpcTotal:     rpcTotal,
		rpcDuration:  rpcDuration,
		settlements:  settlements,
		receiptItems: receiptItems,
	}
}

// Handler returns the http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Interceptor counts and times every unary RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if m == nil {
				return next(ctx, req)
			}
			start := time.Now()
			resp, err := next(ctx, req)

			procedure := req.Spec().Procedure
			m.rpcTotal.WithLabelValues(procedure, codeOf(err)).Inc()
			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

// ObserveSettlement records one settlement computation.
func (m *Metrics) ObserveSettlement(strategy, outcome string) {
	if m == nil {
		return
	}
	m.settlements.WithLabelValues(strategy, outcome).Inc()
}

// AddReceiptItems records the result of a receipt import.
func (m *Metrics) AddReceiptItems(added, rejected int) {
	if m == nil {
		return
	}
	if added > 0 {
		m.receiptItems.WithLabelValues("added").Add(float64(added))
	}
	if rejected > 0 {
		m.receiptItems.WithLabelValues("rejected").Add(float64(rejected))
	}
}

func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Code().String()
	}
	return connect.CodeUnknown.String()
}
