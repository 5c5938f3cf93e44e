package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
)

// CreateNodeJoinTransaction requests council membership for node. The request
// is signed by the wallet key of address, which must not be jailed.
func (s *NetworkOps) CreateNodeJoinTransaction(
	ctx context.Context,
	name string,
	enckey wallet.EncKey,
	address chain.StakingAddress,
	attributes chain.StakingOpAttributes,
	node chain.CouncilNode,
) (aux chain.TxAux, err *types.Error) {
	defer observe(ctx, nodeJoinOperation)(&err)

	state, fetchErr := s.fetchAccount(ctx, address)
	if fetchErr != nil {
		return nil, types.AsError(fetchErr)
	}
	if e := requireUnjailed(state); e != nil {
		return nil, types.AsError(e)
	}

	tx := chain.NewNodeJoinRequestTx(state.Nonce, address, attributes, node)
	witness, signErr := s.signStakingOp(ctx, name, enckey, address, tx)
	if signErr != nil {
		return nil, types.AsError(signErr)
	}

	log.Ctx(ctx).Debug().
		Str("address", address.String()).
		Str("txid", chain.FormatTxID(tx.ID())).
		Str("node", node.Name).
		Msg("node join transaction created")
	return &chain.NodeJoinTxAux{Tx: tx, Witness: witness}, nil
}
