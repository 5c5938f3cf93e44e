package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/signer"
	"github.com/babylonchain/staking-ops-client/internal/types"
)

// calculateFee estimates the fee of a withdrawal paying outputs, using a
// mock signed envelope of the same size as the real one.
func (s *NetworkOps) calculateFee(outputs []chain.TxOut, attributes chain.TxAttributes) (types.Coin, error) {
	tx := chain.NewWithdrawUnbondedTx(0, outputs, attributes)
	aux, err := s.dummy.MockTxAuxForWithdraw(tx)
	if err != nil {
		return 0, types.NewError(types.ValidationError, fmt.Errorf("Calculated fee failed: %w", err))
	}
	return s.feeForTxAux(aux)
}

func (s *NetworkOps) feeForTxAux(aux chain.TxAux) (types.Coin, error) {
	fee, err := s.fees.CalculateForTxAux(aux)
	if err != nil {
		return 0, types.NewError(
			types.IllegalInput,
			fmt.Errorf("Calculated fee is more than the maximum allowed value: %w", err),
		)
	}
	return fee.ToCoin(), nil
}

// CalculateDepositFee estimates the fee of a deposit spending one input.
func (s *NetworkOps) CalculateDepositFee(ctx context.Context) (fee types.Coin, err *types.Error) {
	defer observe(ctx, depositFeeOperation)(&err)

	aux, mockErr := s.dummy.MockTxAuxForDeposit([]chain.UnspentOutput{signer.DummyUnspentOutput()})
	if mockErr != nil {
		return 0, types.NewError(types.ValidationError, fmt.Errorf("Calculated fee failed: %w", mockErr))
	}
	amount, feeErr := s.feeForTxAux(aux)
	if feeErr != nil {
		return 0, types.AsError(feeErr)
	}
	log.Ctx(ctx).Debug().Str("fee", amount.String()).Msg("deposit fee calculated")
	return amount, nil
}
