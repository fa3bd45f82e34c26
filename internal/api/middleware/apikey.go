package middleware

import (
	"net/http"

	"github.com/tradevault/Trade-Journal-Backend/internal/api/response"
)

// KeySource supplies the currently configured API key in plaintext.
// An empty key with a nil error means no key is configured.
type KeySource interface {
	APIKey() (string, error)
}

// RequireAPIKey guards write endpoints with the X-API-Key header.
// When no key is configured the middleware lets every request through, so a
// fresh local install works without setup. Key lookup happens per request
// because the key can be rotated at runtime via the system endpoint.
func RequireAPIKey(source KeySource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, err := source.APIKey()
			if err != nil {
				response.RespondError(w, http.StatusInternalServerError, "failed to verify API key", err.Error())
				return
			}

			if key != "" && r.Header.Get("X-API-Key") != key {
				response.RespondError(w, http.StatusUnauthorized, "invalid or missing API key", "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
