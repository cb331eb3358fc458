package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLogging logs one line on arrival and one on completion, with
// the level escalated for client and server errors. The Authorization header
// is never logged.
func withRequestLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger.Info("request received",
			"event", "http_request_received",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"method", r.Method,
			"url", r.URL.Path,
			"ip", r.RemoteAddr,
		)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		level := slog.LevelInfo
		switch {
		case recorder.status >= 500:
			level = slog.LevelError
		case recorder.status >= 400:
			level = slog.LevelWarn
		}
		logger.Log(r.Context(), level, "request completed",
			"event", "http_request_completed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"method", r.Method,
			"url", r.URL.Path,
			"status", recorder.status,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	})
}
