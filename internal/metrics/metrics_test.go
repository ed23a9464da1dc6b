package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveSettlement(t *testing.T) {
	m := New()
	m.ObserveSettlement("SPLIT_EQUALLY", OutcomeOK)
	m.ObserveSettlement("SPLIT_EQUALLY", OutcomeOK)
	m.ObserveSettlement("PAYER_PAYS_ALL", OutcomeRejected)

	if got := testutil.ToFloat64(m.settlements.WithLabelValues("SPLIT_EQUALLY", OutcomeOK)); got != 2 {
		t.Errorf("expected 2 ok settlements, got %v", got)
	}
	if got := testutil.ToFloat64(m.settlements.WithLabelValues("PAYER_PAYS_ALL", OutcomeRejected)); got != 1 {
		t.Errorf("expected 1 rejected settlement, got %v", got)
	}
}

func TestAddReceiptItems(t *testing.T) {
	m := New()
	m.AddReceiptItems(3, 1)
	m.AddReceiptItems(0, 2)

	if got := testutil.ToFloat64(m.receiptItems.WithLabelValues("added")); got != 3 {
		t.Errorf("expected 3 added, got %v", got)
	}
	if got := testutil.ToFloat64(m.receiptItems.WithLabelValues("rejected")); got != 3 {
		t.Errorf("expected 3 rejected, got %v", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	// Must not panic
	m.ObserveSettlement("SPLIT_EQUALLY", OutcomeOK)
	m.AddReceiptItems(1, 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 503 {
		t.Errorf("expected 503 from nil metrics handler, got %d", rec.Code)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveSettlement("SPLIT_EQUALLY", OutcomeEmpty)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "patungan_settlements_total") {
		t.Errorf("expected settlement counter in output, got:\n%s", body)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "ok"},
		{"connect error", connect.NewError(connect.CodeNotFound, errors.New("missing")), "not_found"},
		{"plain error", errors.New("boom"), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codeOf(tt.err); got != tt.want {
				t.Errorf("codeOf(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
