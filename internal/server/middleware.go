package server

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-Id"

// withRequestLog wraps a handler with request-ID assignment, structured
// request logging, and panic recovery.
func withRequestLog(logger zerolog.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, requestID)

		reqLogger := logger.With().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()

		defer func() {
			if rec := recover(); rec != nil {
				reqLogger.Error().
					Interface("panic", rec).
					Msg("handler panicked")
				errorResponse(w, http.StatusInternalServerError, "internal error")
			}
		}()

		next(w, r.WithContext(reqLogger.WithContext(r.Context())))

		reqLogger.Info().
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("request completed")
	}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func jsonResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func errorResponse(w http.ResponseWriter, statusCode int, message string) {
	jsonResponse(w, statusCode, errorBody{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

func fieldErrorResponse(w http.ResponseWriter, statusCode int, field, message string) {
	jsonResponse(w, statusCode, errorBody{
		Error:   http.StatusText(statusCode),
		Field:   field,
		Message: message,
	})
}
