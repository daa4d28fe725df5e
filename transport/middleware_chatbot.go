package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hoangtm/restaurant-ordering/constant"
	"github.com/hoangtm/restaurant-ordering/utils/errors"
)

// ChatbotMiddleware authenticates the chatbot channel with a static shared
// secret carried in the X-Api-Key header or the key query parameter. Any
// mismatch or absence is an unauthorized response.
func ChatbotMiddleware(secretKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Api-Key")
			if key == "" {
				key = r.URL.Query().Get("key")
			}
			if secretKey == "" || key != secretKey {
				writeChatbotError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
