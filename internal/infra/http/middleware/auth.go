package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

type unauthorizedResponse struct {
	Error string `json:"error"`
}

// BearerAuth gates a route group behind a fixed allow-list of opaque API
// keys. The allow-list comes from config; there is no per-key scoping.
// Rejected requests never reach the handlers behind the gate.
func BearerAuth(apiKeys []string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok || !keyAllowed(apiKeys, token) {
				logger.Warn("unauthorized request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				unauthorizedRequests.Inc()

				w.Header().Set("WWW-Authenticate", "Bearer")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(unauthorizedResponse{Error: "invalid API key"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func keyAllowed(apiKeys []string, token string) bool {
	allowed := false
	for _, key := range apiKeys {
		if len(key) == len(token) && subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1 {
			allowed = true
		}
	}
	return allowed
}
