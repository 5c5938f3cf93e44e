package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/services"
	"github.com/babylonchain/staking-ops-client/internal/types"
)

// GetStakedState returns the ledger record of the staking address in the path.
func (h *Handler) GetStakedState(request *http.Request) (*Result, *types.Error) {
	address, err := chain.ParseStakingAddress(chi.URLParam(request, "address"))
	if err != nil {
		return nil, types.NewError(types.InvalidInput, err)
	}

	state, opErr := h.services.Ops.GetStakedState(request.Context(), address)
	if opErr != nil {
		return nil, opErr
	}
	return NewResult(services.NewStakedStatePublic(state)), nil
}

type depositFeePublic struct {
	Fee string `json:"fee"`
}

// GetDepositFee estimates the fee of a single input deposit.
func (h *Handler) GetDepositFee(request *http.Request) (*Result, *types.Error) {
	fee, err := h.services.Ops.CalculateDepositFee(request.Context())
	if err != nil {
		return nil, err
	}
	return NewResult(depositFeePublic{Fee: fee.String()}), nil
}
