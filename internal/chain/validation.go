package chain

import (
	"errors"
	"fmt"

	"github.com/babylonchain/staking-ops-client/internal/types"
)

var (
	ErrAccountJailed       = errors.New("account is jailed")
	ErrNoInputs            = errors.New("transaction has no inputs")
	ErrNoOutputs           = errors.New("transaction has no outputs")
	ErrDuplicateInputs     = errors.New("transaction spends the same input twice")
	ErrUnexpectedWitnesses = errors.New("number of witnesses does not match number of inputs")
	ErrZeroCoin            = errors.New("output has zero value")
	ErrInvalidSum          = errors.New("sum of output values is out of range")
)

func VerifyUnjailed(state *StakedState) error {
	if until, jailed := state.JailedUntil(); jailed {
		return fmt.Errorf("%w: %s jailed until %d", ErrAccountJailed, state.Address, until)
	}
	return nil
}

// CheckInputsBasic performs the structural checks the ledger applies to
// transaction inputs before looking at any state.
func CheckInputsBasic(inputs []TxoPointer, witness TxWitness) error {
	if len(inputs) == 0 {
		return ErrNoInputs
	}
	seen := make(map[TxoPointer]struct{}, len(inputs))
	for _, in := range inputs {
		if _, ok := seen[in]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateInputs, in)
		}
		seen[in] = struct{}{}
	}
	if len(inputs) != len(witness) {
		return fmt.Errorf("%w: %d inputs, %d witnesses", ErrUnexpectedWitnesses, len(inputs), len(witness))
	}
	return nil
}

// CheckOutputsBasic performs the structural checks the ledger applies to
// transaction outputs.
func CheckOutputsBasic(outputs []TxOut) error {
	if len(outputs) == 0 {
		return ErrNoOutputs
	}
	values := make([]types.Coin, 0, len(outputs))
	for _, out := range outputs {
		if out.Value == 0 {
			return fmt.Errorf("%w: %s", ErrZeroCoin, out.Address)
		}
		values = append(values, out.Value)
	}
	if _, err := types.SumCoins(values...); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSum, err)
	}
	return nil
}

// OutputsValue returns the checked sum of the output values.
func OutputsValue(outputs []TxOut) (types.Coin, error) {
	values := make([]types.Coin, 0, len(outputs))
	for _, out := range outputs {
		values = append(values, out.Value)
	}
	return types.SumCoins(values...)
}
