package services

import (
	"fmt"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/types"
)

const syncHint = "(synchronizing your wallet may help)"

func requireUnjailed(state *chain.StakedState) error {
	if err := chain.VerifyUnjailed(state); err != nil {
		return types.NewError(types.ValidationError, fmt.Errorf("Failed to validate staking account: %w", err))
	}
	return nil
}

func requireJailed(state *chain.StakedState) error {
	if !state.IsJailed() {
		return types.NewErrorWithMsg(
			types.IllegalInput,
			"You can only unjail an already jailed account "+syncHint,
		)
	}
	return nil
}

func requireUnbondingMatured(state *chain.StakedState, referenceTime chain.Timespec) error {
	if state.UnbondedFrom > referenceTime {
		return types.NewErrorWithMsg(
			types.ValidationError,
			fmt.Sprintf("Staking state is not yet unbonded: unbonded from %d, last block time %d",
				state.UnbondedFrom, referenceTime),
		)
	}
	return nil
}

func requireSufficientBonded(state *chain.StakedState, amount types.Coin) error {
	if state.Bonded < amount {
		return types.NewErrorWithMsg(
			types.InvalidInput,
			fmt.Sprintf("Staking account does not have enough coins to unbond %s: requested %s, bonded %s",
				syncHint, amount, state.Bonded),
		)
	}
	return nil
}

func requireSufficientUnbonded(state *chain.StakedState, amount types.Coin) error {
	if state.Unbonded < amount {
		return types.NewErrorWithMsg(
			types.InvalidInput,
			fmt.Sprintf("Staking account does not have enough unbonded coins to withdraw %s: requested %s, unbonded %s",
				syncHint, amount, state.Unbonded),
		)
	}
	return nil
}
