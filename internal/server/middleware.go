package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"go.uber.org/zap"
)

// requestID makes sure every request carries an X-Request-ID, echoing it on
// the response so clients can correlate log lines.
func (h *handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(constants.RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(constants.RequestIDHeader, id)
		}
		w.Header().Set(constants.RequestIDHeader, id)

		h.logger.Debug("request received",
			zap.String("op", "server.requestID"),
			zap.String("requestId", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r)
	})
}

func (h *handler) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && h.maxUploadSize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		}
		next.ServeHTTP(w, r)
	})
}
