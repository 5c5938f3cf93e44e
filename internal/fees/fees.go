package fees

import (
	"errors"
	"fmt"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/types"
)

var ErrFeeOutOfRange = errors.New("fee is out of the allowed range")

// Policy computes the fee the ledger charges for a broadcast envelope.
type Policy interface {
	CalculateForTxAux(aux chain.TxAux) (types.Fee, error)
}

// LinearFee charges Constant plus Coefficient per byte of the encoded envelope.
type LinearFee struct {
	Constant    types.Milli
	Coefficient types.Milli
}

func NewLinearFee(constant, coefficient types.Milli) *LinearFee {
	return &LinearFee{Constant: constant, Coefficient: coefficient}
}

func (l *LinearFee) CalculateForTxAux(aux chain.TxAux) (types.Fee, error) {
	enc, err := chain.EncodeTxAux(aux)
	if err != nil {
		return types.Fee{}, fmt.Errorf("failed to encode transaction for fee calculation: %w", err)
	}
	return l.estimate(len(enc))
}

func (l *LinearFee) estimate(size int) (types.Fee, error) {
	perByte, err := l.Coefficient.MulInt(uint64(size))
	if err != nil {
		return types.Fee{}, fmt.Errorf("%w: %v", ErrFeeOutOfRange, err)
	}
	total, err := l.Constant.Add(perByte)
	if err != nil {
		return types.Fee{}, fmt.Errorf("%w: %v", ErrFeeOutOfRange, err)
	}
	amount, err := types.NewCoin(total.Ceil())
	if err != nil {
		return types.Fee{}, fmt.Errorf("%w: %v", ErrFeeOutOfRange, err)
	}
	return types.NewFee(amount), nil
}

// UnitFee charges one base unit for every transaction.
type UnitFee struct{}

func (UnitFee) CalculateForTxAux(chain.TxAux) (types.Fee, error) {
	return types.NewFee(types.UnitCoin()), nil
}
