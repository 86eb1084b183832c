package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aradhyadengreee/ai-career-app/internal/common/metrics"
)

// Handler builds the full route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/api/user/register", s.instrument("register", s.methodOnly(http.MethodPost, s.handleRegister)))
	mux.Handle("/api/careers/recommendations", s.instrument("recommendations", s.methodOnly(http.MethodGet, s.handleRecommendations)))
	mux.Handle("/api/user/logout", s.instrument("logout", s.methodOnly(http.MethodPost, s.handleLogout)))

	mux.Handle("/api/debug/sessions", s.instrument("debug-sessions", s.methodOnly(http.MethodGet, s.handleDebugSessions)))
	mux.Handle("/api/debug/session/", s.instrument("debug-session", s.methodOnly(http.MethodGet, s.handleDebugSession)))

	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func (s *Server) methodOnly(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) instrument(route string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()

		s.logger.Debug("request handled", map[string]interface{}{
			"route":      route,
			"status":     rec.status,
			"durationMs": time.Since(start).Milliseconds(),
		})
	})
}
