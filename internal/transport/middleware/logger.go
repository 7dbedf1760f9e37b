package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/dreamjournal-backend/pkg/ctxutil"
)

// quietPaths are probe endpoints logged at debug level only.
var quietPaths = map[string]struct{}{
	"/live":    {},
	"/ready":   {},
	"/metrics": {},
}

// Logger writes one "http request" line per finished request. Server
// errors log at error level, probes at debug, everything else at info.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			ctx := r.Context()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if rc := chi.RouteContext(ctx); rc != nil && rc.RoutePattern() != "" {
				attrs = append(attrs, slog.String("route", rc.RoutePattern()))
			}
			if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}
			if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			logger.LogAttrs(ctx, requestLevel(r.URL.Path, sw.status), "http request", attrs...)
		})
	}
}

func requestLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status < http.StatusBadRequest:
		if _, ok := quietPaths[path]; ok {
			return slog.LevelDebug
		}
	}
	return slog.LevelInfo
}
