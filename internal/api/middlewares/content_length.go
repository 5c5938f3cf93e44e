package middlewares

import (
	"net/http"

	"github.com/babylonchain/staking-ops-client/internal/config"
)

// ContentLengthMiddleware rejects request bodies above the configured limit.
// Every route is a GET, so any sizeable body is a misuse.
func ContentLengthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > cfg.Server.MaxContentLength {
				http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
