package middleware

import (
	"net/http"
	"time"

	"go-doctor-directory/internal/observability/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type LoggingMiddleware struct {
	log     *logrus.Logger
	metrics *metrics.DirectoryMetrics
}

func NewLoggingMiddleware(log *logrus.Logger, m *metrics.DirectoryMetrics) *LoggingMiddleware {
	return &LoggingMiddleware{log: log, metrics: m}
}

// Handle logs every request and records its latency under the matched route template
func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		elapsed := time.Since(start)
		m.metrics.ObserveRequest(route, r.Method, rec.status, elapsed.Seconds())

		entry := m.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"route":    route,
			"status":   rec.status,
			"duration": elapsed.String(),
		})
		if rec.status >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Info("request handled")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
