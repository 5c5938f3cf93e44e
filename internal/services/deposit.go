package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/signer"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
)

// CreateDepositBondedStakeTransaction bonds the value of transactions to the
// staking address to. Every transaction must be spendable by a transfer key of
// the wallet. Deposits to a staking address of another wallet require that
// account to be unjailed.
func (s *NetworkOps) CreateDepositBondedStakeTransaction(
	ctx context.Context,
	name string,
	enckey wallet.EncKey,
	transactions []chain.UnspentOutput,
	to chain.StakingAddress,
	attributes chain.StakingOpAttributes,
) (aux chain.TxAux, pending *chain.TransactionPending, err *types.Error) {
	defer observe(ctx, depositOperation)(&err)

	// 1. a foreign destination account must be able to receive the stake
	own, ownErr := s.isOwnStakingAddress(ctx, name, enckey, to)
	if ownErr != nil {
		return nil, nil, types.AsError(ownErr)
	}
	if !own {
		state, fetchErr := s.fetchAccount(ctx, to)
		if fetchErr != nil {
			return nil, nil, types.AsError(fetchErr)
		}
		if e := requireUnjailed(state); e != nil {
			return nil, nil, types.AsError(e)
		}
	}

	// 2. build and sign over every offered output
	selected := signer.NewUnspentTransactions(transactions).SelectAll()
	inputs := selected.Pointers()
	tx := chain.NewDepositBondTx(inputs, to, attributes)
	witness, signErr := s.signers.CreateSigner(name, enckey).SchnorrSignTransaction(ctx, tx, selected)
	if signErr != nil {
		return nil, nil, types.AsError(signErr)
	}
	if e := chain.CheckInputsBasic(inputs, witness); e != nil {
		return nil, nil, types.NewError(
			types.ValidationError,
			fmt.Errorf("Failed to validate deposit transaction inputs: %w", e),
		)
	}

	// 3. seal the witnesses and record the spent inputs
	aux, encErr := s.encrypt(ctx, &chain.SignedDepositStakeTx{Tx: tx, Witness: witness})
	if encErr != nil {
		return nil, nil, types.AsError(encErr)
	}
	height, heightErr := s.blockHeightOrZero(ctx, name)
	if heightErr != nil {
		return nil, nil, types.AsError(heightErr)
	}

	log.Ctx(ctx).Debug().
		Str("to", to.String()).
		Str("txid", chain.FormatTxID(tx.ID())).
		Int("inputs", len(inputs)).
		Bool("own_address", own).
		Msg("deposit transaction created")
	return aux, &chain.TransactionPending{
		BlockHeight:  height,
		UsedInputs:   inputs,
		ReturnAmount: types.ZeroCoin(),
	}, nil
}

func (s *NetworkOps) isOwnStakingAddress(
	ctx context.Context, name string, enckey wallet.EncKey, address chain.StakingAddress,
) (bool, error) {
	addresses, err := s.wallet.StakingAddresses(ctx, name, enckey)
	if err != nil {
		return false, err
	}
	for _, a := range addresses {
		if a == address {
			return true, nil
		}
	}
	return false, nil
}
