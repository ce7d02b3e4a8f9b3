package middleware

import (
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

// RequestLogMiddleware tags every response with a request id (reusing the
// caller's if present) and writes one access log line per request.
func RequestLogMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		m := httpsnoop.CaptureMetrics(next, w, r)

		logger.Info("Request handled",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", m.Code),
			zap.Duration("duration", m.Duration))
	}
}

// Chain applies the middleware every public route goes through. CORS is
// applied by the boot server around the chained handler.
func Chain(h http.HandlerFunc) http.HandlerFunc {
	return RequestLogMiddleware(RecoverMiddleware(h))
}
