package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
)

// CreateUnjailTransaction clears the jail marker of address. The account
// must currently be jailed.
func (s *NetworkOps) CreateUnjailTransaction(
	ctx context.Context,
	name string,
	enckey wallet.EncKey,
	address chain.StakingAddress,
	attributes chain.StakingOpAttributes,
) (aux chain.TxAux, err *types.Error) {
	defer observe(ctx, unjailOperation)(&err)

	state, fetchErr := s.fetchAccount(ctx, address)
	if fetchErr != nil {
		return nil, types.AsError(fetchErr)
	}
	if e := requireJailed(state); e != nil {
		return nil, types.AsError(e)
	}

	tx := chain.NewUnjailTx(state.Nonce, address, attributes)
	witness, signErr := s.signStakingOp(ctx, name, enckey, address, tx)
	if signErr != nil {
		return nil, types.AsError(signErr)
	}

	log.Ctx(ctx).Debug().
		Str("address", address.String()).
		Str("txid", chain.FormatTxID(tx.ID())).
		Msg("unjail transaction created")
	return &chain.UnjailTxAux{Tx: tx, Witness: witness}, nil
}
