package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/justtnz/devdock-site/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = iota

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// RequestID returns the id assigned to the request by WithRequestID.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithRequestID tags every request with an id, reusing a well-formed
// incoming X-Request-ID and echoing it on the response.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// LogRequests writes one structured log line per request.
func LogRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.LogAttrs(r.Context(), levelFor(rec.status), "request",
			slog.String("request_id", RequestID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func levelFor(status int) slog.Level {
	if status >= 500 {
		return slog.LevelError
	}
	return slog.LevelInfo
}

// InstrumentHandler wraps an HTTP handler with Prometheus metrics.
// With nil metrics the handler is returned unchanged.
func InstrumentHandler(next http.Handler, m *metrics.Metrics) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.ObserveRequest(r.Method, sanitizePath(r.URL.Path), strconv.Itoa(rec.status), time.Since(start))
	})
}

var fixedRoutes = map[string]bool{
	"/":         true,
	"/docs":     true,
	"/releases": true,
	"/download": true,
	"/api/docs": true,
	"/healthz":  true,
	"/metrics":  true,
}

// sanitizePath maps a request path to its route pattern so metric label
// cardinality stays bounded:
//
//	/docs/features/log-viewer     -> /docs/:section/:item
//	/api/docs/advanced/x          -> /api/docs/:section/:item
//	/wp-login.php                 -> /:unmatched
func sanitizePath(path string) string {
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	if fixedRoutes[path] {
		return path
	}
	parts := strings.Split(path, "/")
	switch {
	case len(parts) == 4 && parts[1] == "docs":
		return "/docs/:section/:item"
	case len(parts) == 5 && parts[1] == "api" && parts[2] == "docs":
		return "/api/docs/:section/:item"
	}
	return "/:unmatched"
}
