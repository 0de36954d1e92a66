package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"resto-backend/pkg/utils"
)

// PanicRecovery converts handler panics into 500 responses. The method and
// path of the panicking request are logged with the stack for triage.
func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[Recovery] Panic on %s %s: %v\n%s", r.Method, r.URL.Path, err, debug.Stack())
				utils.Error(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
