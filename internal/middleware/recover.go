package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"pet-health-record/internal/platform/httpx"
	"pet-health-record/internal/platform/logger"
)

// Recover reemplaza a chi/middleware.Recoverer: loguea el panic y responde
// con el envelope JSON de 500 en lugar de texto plano.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
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

				logger.FromContext(r.Context(), log).Error("panic recovered", map[string]any{
					"panic": fmt.Sprint(rec),
					"stack": string(debug.Stack()),
				})
				httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorBody{Detail: "Internal server error."})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
