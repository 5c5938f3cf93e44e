package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
)

// CreateWithdrawUnbondedStakeTransaction pays matured unbonded stake of from
// out to outputs. The returned record expects the outputs total back.
func (s *NetworkOps) CreateWithdrawUnbondedStakeTransaction(
	ctx context.Context,
	name string,
	enckey wallet.EncKey,
	from chain.StakingAddress,
	outputs []chain.TxOut,
	attributes chain.TxAttributes,
) (aux chain.TxAux, pending *chain.TransactionPending, err *types.Error) {
	defer observe(ctx, withdrawOperation)(&err)

	aux, pending, withdrawErr := s.withdrawUnbonded(ctx, name, enckey, from, outputs, attributes)
	if withdrawErr != nil {
		return nil, nil, types.AsError(withdrawErr)
	}
	return aux, pending, nil
}

// CreateWithdrawAllUnbondedStakeTransaction withdraws the whole unbonded
// balance of from, less the fee, as one output to to. The output stays
// locked until the unbonding time of the account.
func (s *NetworkOps) CreateWithdrawAllUnbondedStakeTransaction(
	ctx context.Context,
	name string,
	enckey wallet.EncKey,
	from chain.StakingAddress,
	to chain.ExtendedAddr,
	attributes chain.TxAttributes,
) (aux chain.TxAux, pending *chain.TransactionPending, err *types.Error) {
	defer observe(ctx, withdrawAllOperation)(&err)

	// 1. check the account is not jailed
	state, fetchErr := s.fetchAccount(ctx, from)
	if fetchErr != nil {
		return nil, nil, types.AsError(fetchErr)
	}
	if e := requireUnjailed(state); e != nil {
		return nil, nil, types.AsError(e)
	}

	// 2. estimate the fee with a placeholder output of the final shape
	placeholder := chain.NewTxOutWithTimelock(to, types.ZeroCoin(), state.UnbondedFrom)
	fee, feeErr := s.calculateFee([]chain.TxOut{placeholder}, attributes)
	if feeErr != nil {
		return nil, nil, types.AsError(feeErr)
	}
	amount, subErr := state.Unbonded.Sub(fee)
	if subErr != nil {
		return nil, nil, types.NewError(
			types.IllegalInput,
			fmt.Errorf("Calculated fee is more than the unbonded amount: fee %s, unbonded %s", fee, state.Unbonded),
		)
	}

	// 3. the single real output must pass the ledger's output checks
	outputs := []chain.TxOut{chain.NewTxOutWithTimelock(to, amount, state.UnbondedFrom)}
	if e := chain.CheckOutputsBasic(outputs); e != nil {
		return nil, nil, types.NewError(types.ValidationError, fmt.Errorf("Failed to validate staking account: %w", e))
	}

	log.Ctx(ctx).Debug().
		Str("address", from.String()).
		Str("fee", fee.String()).
		Str("amount", amount.String()).
		Msg("withdrawing all unbonded stake")

	aux, pending, withdrawErr := s.withdrawUnbonded(ctx, name, enckey, from, outputs, attributes)
	if withdrawErr != nil {
		return nil, nil, types.AsError(withdrawErr)
	}
	return aux, pending, nil
}

func (s *NetworkOps) withdrawUnbonded(
	ctx context.Context,
	name string,
	enckey wallet.EncKey,
	from chain.StakingAddress,
	outputs []chain.TxOut,
	attributes chain.TxAttributes,
) (chain.TxAux, *chain.TransactionPending, error) {
	// 1. check the unbonded stake has matured and covers the outputs
	lastBlockTime, err := s.lastBlockTime(ctx)
	if err != nil {
		return nil, nil, err
	}
	state, err := s.fetchAccount(ctx, from)
	if err != nil {
		return nil, nil, err
	}
	if err := requireUnbondingMatured(state, lastBlockTime); err != nil {
		return nil, nil, err
	}
	if err := requireUnjailed(state); err != nil {
		return nil, nil, err
	}
	outputValue, err := chain.OutputsValue(outputs)
	if err != nil {
		return nil, nil, types.NewError(types.InvalidInput, fmt.Errorf("Error while adding output values: %w", err))
	}
	if err := requireSufficientUnbonded(state, outputValue); err != nil {
		return nil, nil, err
	}

	// 2. sign with the account's current nonce and seal the body
	tx := chain.NewWithdrawUnbondedTx(state.Nonce, outputs, attributes)
	witness, err := s.signStakingOp(ctx, name, enckey, from, tx)
	if err != nil {
		return nil, nil, err
	}
	aux, err := s.encrypt(ctx, &chain.SignedWithdrawUnbondedStakeTx{Tx: tx, Witness: witness})
	if err != nil {
		return nil, nil, err
	}

	// 3. record the expected return for the wallet
	height, err := s.blockHeightOrZero(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	log.Ctx(ctx).Debug().
		Str("address", from.String()).
		Str("txid", chain.FormatTxID(tx.ID())).
		Str("amount", outputValue.String()).
		Msg("withdraw unbonded transaction created")
	return aux, &chain.TransactionPending{
		BlockHeight:  height,
		UsedInputs:   []chain.TxoPointer{},
		ReturnAmount: outputValue,
	}, nil
}
