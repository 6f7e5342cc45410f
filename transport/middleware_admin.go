package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/e-voting/constant"
	"github.com/muhammadheryan/e-voting/utils/errors"
	"golang.org/x/crypto/bcrypt"
)

// AdminMiddleware guards admin routes with basic auth. The password is checked
// against a bcrypt hash; an empty hash disables the admin routes.
func AdminMiddleware(user, passwordHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, p, ok := r.BasicAuth()
			if !ok || passwordHash == "" || subtle.ConstantTimeCompare([]byte(u), []byte(user)) != 1 {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(p)); err != nil {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
