package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/warehouse/pkg/logger"
	"github.com/shashiranjanraj/warehouse/pkg/metrics"
	"github.com/shashiranjanraj/warehouse/pkg/response"
)

// headerTracker notes whether the handler already started its response.
type headerTracker struct {
	http.ResponseWriter
	wrote bool
}

func (t *headerTracker) WriteHeader(code int) {
	t.wrote = true
	t.ResponseWriter.WriteHeader(code)
}

func (t *headerTracker) Write(b []byte) (int, error) {
	t.wrote = true
	return t.ResponseWriter.Write(b)
}

// Recovery turns a handler panic into a logged, counted 500. When the handler
// had already written, the status is kept and only the log line remains.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
//
//	r.Use(metrics.Middleware())
//	r.Use(middleware.Recovery)
//	r.Use(reqid.Middleware())
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &headerTracker{ResponseWriter: w}
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				path = rctx.RoutePattern()
			}
			metrics.PanicsRecovered.WithLabelValues(path).Inc()

			logger.WithCtx(r.Context()).Error("panic recovered",
				"error", fmt.Sprint(v),
				"method", r.Method,
				"path", path,
				"response_started", tw.wrote,
				"stack", string(debug.Stack()),
			)
			if !tw.wrote {
				response.Error(w, http.StatusInternalServerError, "Internal Server Error")
			}
		}()
		next.ServeHTTP(tw, r)
	})
}
