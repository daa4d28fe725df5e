package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/hoangtm/restaurant-ordering/application/user"
	"github.com/hoangtm/restaurant-ordering/constant"
	"github.com/hoangtm/restaurant-ordering/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// The chatbot and internal surfaces authenticate with their own keys and skip
// the session check.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints skip session auth
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/chatbot/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" {
		return true
	}

	return false
}
