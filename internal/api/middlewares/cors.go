package middlewares

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/babylonchain/staking-ops-client/internal/config"
)

const (
	maxAge = 300
)

func CorsMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         maxAge,
	})
	return c.Handler
}
