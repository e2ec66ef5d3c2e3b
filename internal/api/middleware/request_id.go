package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID заголовок с ID запроса
const HeaderRequestID = "X-Request-ID"

type ctxKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// RequestID проставляет X-Request-ID (берет входящий или генерирует UUID)
// и пишет строку access-лога
func RequestID(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(HeaderRequestID, id)
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))

			logger.Info("request_id=%s %s %s -> %d", id, r.Method, r.URL.RequestURI(), rec.status)
		})
	}
}

// RequestIDFromContext возвращает ID запроса или пустую строку
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
