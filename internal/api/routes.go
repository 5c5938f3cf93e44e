package api

import (
	"github.com/go-chi/chi"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Get("/v1/staking/{address}", registerHandler(handlers.GetStakedState))
	r.Get("/v1/fees/deposit", registerHandler(handlers.GetDepositFee))
	r.Get("/v1/wallets/{name}/pending", registerHandler(handlers.GetPendingTransactions))
	r.Get("/v1/wallets/{name}/sync-height", registerHandler(handlers.GetSyncHeight))
}
