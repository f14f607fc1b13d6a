package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"registration-form/internal/platform/logger"
)

// Recover reemplaza a chi/middleware.Recoverer para que el 500 tenga
// el mismo cuerpo JSON que el resto de errores y quede en nuestro logger.
func Recover(base logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.FromContext(r.Context(), base).Error("panic recovered", logger.Fields{
					"panic": rec,
					"stack": string(debug.Stack()),
				})

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "internal error"})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
