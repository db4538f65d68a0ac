package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/eastlane-store/go-backend/pkg/e"
)

// adminAuth пускает в админку только запросы с верным X-Admin-Token.
func adminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Token")
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				WriteError(w, e.ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
