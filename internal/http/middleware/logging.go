package middleware

import (
	"net/http"
	"time"
	"walletscan/internal/metrics"

	"go.uber.org/zap"
)

type LoggingMiddleware struct {
	logs    *zap.SugaredLogger
	metrics *metrics.Collector
}

func NewLoggingMiddleware(logger *zap.SugaredLogger, collector *metrics.Collector) *LoggingMiddleware {
	return &LoggingMiddleware{
		logs:    logger,
		metrics: collector,
	}
}

// Logging writes one access log line per request and records its latency.
func (m *LoggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		elapsed := time.Since(start)
		m.metrics.HTTPRequest(r.Method, rw.status, elapsed)
		m.logs.Infow("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", elapsed,
			"request_id", RequestIDFrom(r.Context()))
	})
}

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
