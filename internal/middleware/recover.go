package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/models"
)

// WithRecover converts panics into a generic JSON 500 response. The panic
// value stays in the operator log and never reaches the client.
func WithRecover(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("url", r.URL.String()),
						zap.String("request_id", RequestIDFrom(r.Context())),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(models.ErrorResponse{
						Error:   "UnexpectedError",
						Message: "An unexpected error occurred. Please try again later.",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
