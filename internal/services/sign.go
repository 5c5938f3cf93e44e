package services

import (
	"context"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/observability/tracing"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
)

// signStakingOp signs tx with the staking key the wallet holds for address.
func (s *NetworkOps) signStakingOp(
	ctx context.Context, name string, enckey wallet.EncKey, address chain.StakingAddress, tx chain.Transaction,
) (chain.StakingOpWitness, error) {
	return tracing.WrapWithSpan(ctx, "sign", func() (chain.StakingOpWitness, error) {
		pub, err := s.wallet.FindStakingKey(ctx, name, enckey, address)
		if err != nil {
			return chain.StakingOpWitness{}, err
		}
		if pub == nil {
			return chain.StakingOpWitness{}, types.NewErrorWithMsg(types.InvalidInput, "Address not found in current wallet")
		}
		key, err := s.wallet.SignKey(ctx, name, enckey, pub)
		if err != nil {
			return chain.StakingOpWitness{}, err
		}
		witness, err := key.Sign(tx)
		if err != nil {
			return chain.StakingOpWitness{}, types.NewInternalServiceError(err)
		}
		return witness, nil
	})
}

func (s *NetworkOps) encrypt(ctx context.Context, signed chain.SignedTransaction) (chain.TxAux, error) {
	return tracing.WrapWithSpan(ctx, "encrypt", func() (chain.TxAux, error) {
		aux, err := s.cipher.Encrypt(ctx, signed)
		if err != nil {
			return nil, types.AsError(err)
		}
		return aux, nil
	})
}
