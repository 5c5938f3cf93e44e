package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/babylonchain/staking-ops-client/internal/services"
	"github.com/babylonchain/staking-ops-client/internal/types"
)

// Wallet routes only expose state stored without encryption, so they take no
// passphrase.

func (h *Handler) GetPendingTransactions(request *http.Request) (*Result, *types.Error) {
	name := chi.URLParam(request, "name")
	pending, err := h.services.Wallet.PendingTransactions(request.Context(), name)
	if err != nil {
		return nil, types.AsError(err)
	}
	return NewResult(services.PendingTransactionsPublic(pending)), nil
}

type syncHeightPublic struct {
	BlockHeight uint64 `json:"block_height"`
}

func (h *Handler) GetSyncHeight(request *http.Request) (*Result, *types.Error) {
	name := chi.URLParam(request, "name")
	height, err := h.services.Wallet.CurrentBlockHeight(request.Context(), name)
	if err != nil {
		return nil, types.AsError(err)
	}
	return NewResult(syncHeightPublic{BlockHeight: height}), nil
}
