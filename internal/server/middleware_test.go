package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	dto "github.com/prometheus/client_model/go"

	"github.com/justtnz/devdock-site/internal/metrics"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/", "/"},
		{"/docs", "/docs"},
		{"/docs/", "/docs"},
		{"/releases", "/releases"},
		{"/metrics", "/metrics"},
		{"/docs/features/log-viewer", "/docs/:section/:item"},
		{"/docs/features/log-viewer/", "/docs/:section/:item"},
		{"/api/docs/advanced/process-monitoring", "/api/docs/:section/:item"},
		{"/docs/features", "/:unmatched"},
		{"/wp-login.php", "/:unmatched"},
		{"/api/other/a/b", "/:unmatched"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := sanitizePath(tt.input); got != tt.want {
				t.Errorf("sanitizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInstrumentHandler_NilPassthrough(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	wrapped := InstrumentHandler(handler, nil)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if !called {
		t.Error("handler was not called")
	}
}

func TestInstrumentHandler_CapturesErrorStatus(t *testing.T) {
	m := metrics.New("test", "go")
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	InstrumentHandler(handler, m).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/releases", nil))

	labels := map[string]string{"method": "GET", "path": "/releases", "status": "500"}
	if got := gatherCounter(t, m, "devdock_site_http_requests_total", labels); got != 1 {
		t.Errorf("counter = %v, want 1", got)
	}
	if got := gatherHistogramCount(t, m, "devdock_site_http_request_duration_seconds", labels); got != 1 {
		t.Errorf("histogram count = %d, want 1", got)
	}
}

func TestStatusRecorder_DefaultStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec, status: http.StatusOK}
	sr.Write([]byte("ok"))
	if sr.status != http.StatusOK {
		t.Errorf("status = %d, want 200", sr.status)
	}
}

func TestWithRequestID(t *testing.T) {
	var seen string
	h := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("generated id %q is not a uuid: %v", seen, err)
	}
	if rec.Header().Get(requestIDHeader) != seen {
		t.Error("response header does not echo the request id")
	}

	incoming := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(requestIDHeader, incoming)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != incoming {
		t.Errorf("incoming id not reused: got %q want %q", seen, incoming)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(requestIDHeader, "<script>")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen == "<script>" {
		t.Error("malformed incoming id was trusted")
	}
}

func TestLogRequests(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	h := WithRequestID(LogRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), log))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/docs/x/y", nil))
	out := buf.String()
	for _, want := range []string{"msg=request", "method=GET", "path=/docs/x/y", "status=418", "request_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("log line missing %q: %s", want, out)
		}
	}
}

// gatherCounter extracts a counter value from the metrics registry.
func gatherCounter(t *testing.T, m *metrics.Metrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, metric := range f.GetMetric() {
			if labelsMatch(metric.GetLabel(), labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

// gatherHistogramCount extracts the sample count from a histogram.
func gatherHistogramCount(t *testing.T, m *metrics.Metrics, name string, labels map[string]string) uint64 {
	t.Helper()
	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, metric := range f.GetMetric() {
			if labelsMatch(metric.GetLabel(), labels) {
				return metric.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func labelsMatch(pairs []*dto.LabelPair, expected map[string]string) bool {
	if len(pairs) != len(expected) {
		return false
	}
	for _, lp := range pairs {
		if expected[lp.GetName()] != lp.GetValue() {
			return false
		}
	}
	return true
}
