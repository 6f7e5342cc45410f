package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/e-voting/application/user"
	"github.com/muhammadheryan/e-voting/constant"
	utilsContext "github.com/muhammadheryan/e-voting/utils/context"
	"github.com/muhammadheryan/e-voting/utils/errors"
)

// AuthMiddleware returns a middleware that validates voter sessions using UserApp.
// Public endpoints pass through without a token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, sessionID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithSession(r.Context(), userID, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no voter token required)
func isPublicPath(path string) bool {
	for _, prefix := range []string{"/swagger/", "/internal/", "/admin/"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	switch path {
	case "/login", "/config", "/categories", "/live", "/dashboard":
		return true
	}

	return false
}
