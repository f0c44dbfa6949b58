package middleware

import (
	"net/http"
	"time"

	"github.com/angelmondragon/adspend-backend/pkg/logger"
)

func Logging(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if logg == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := logg.WithFields(r.Context(), map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			logg.Debug(ctx, "request.start")

			next.ServeHTTP(rec, r.WithContext(ctx))

			ctx = logg.WithFields(ctx, map[string]any{
				"status":         rec.statusCode(),
				"bytes":          rec.bytes,
				"duration_ms":    time.Since(start).Milliseconds(),
				"content_length": r.ContentLength,
			})
			logg.Info(ctx, "request.complete")
		})
	}
}
