package controller

import (
	"net/http"
	"runtime/debug"
	"triangle/pkg/logger"

	"go.uber.org/zap"
)

// WithRecover returns a middleware that logs panics raised by next and
// answers with a 500 JSON body instead of dropping the connection.
// http.ErrAbortHandler is re-panicked so net/http can abort the response.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler { //nolint: errorlint, err113
				panic(p)
			}

			logger.Error(r.Context(), "captured panic in handler",
				zap.Any("panic", p),
				zap.ByteString("stack", debug.Stack()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
