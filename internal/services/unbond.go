package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
)

// CreateUnbondStakeTransaction moves value from the bonded to the unbonded
// balance of address.
func (s *NetworkOps) CreateUnbondStakeTransaction(
	ctx context.Context,
	name string,
	enckey wallet.EncKey,
	address chain.StakingAddress,
	value types.Coin,
	attributes chain.StakingOpAttributes,
) (aux chain.TxAux, err *types.Error) {
	defer observe(ctx, unbondOperation)(&err)

	// 1. check the account can unbond the requested amount
	state, fetchErr := s.fetchAccount(ctx, address)
	if fetchErr != nil {
		return nil, types.AsError(fetchErr)
	}
	if e := requireUnjailed(state); e != nil {
		return nil, types.AsError(e)
	}
	if e := requireSufficientBonded(state, value); e != nil {
		return nil, types.AsError(e)
	}

	// 2. build and sign with the account's current nonce
	tx := chain.NewUnbondTx(address, state.Nonce, value, attributes)
	witness, signErr := s.signStakingOp(ctx, name, enckey, address, tx)
	if signErr != nil {
		return nil, types.AsError(signErr)
	}

	log.Ctx(ctx).Debug().
		Str("address", address.String()).
		Str("txid", chain.FormatTxID(tx.ID())).
		Uint64("nonce", uint64(state.Nonce)).
		Msg("unbond transaction created")
	return &chain.UnbondStakeTxAux{Tx: tx, Witness: witness}, nil
}
