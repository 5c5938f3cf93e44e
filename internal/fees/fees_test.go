package fees

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/types"
)

func unbondAux() chain.TxAux {
	tx := chain.NewUnbondTx(chain.StakingAddress{1}, 3, 100, chain.NewStakingOpAttributes(0xab))
	return &chain.UnbondStakeTxAux{Tx: tx}
}

func TestLinearFeeScalesWithEncodedSize(t *testing.T) {
	aux := unbondAux()
	enc, err := chain.EncodeTxAux(aux)
	require.NoError(t, err)

	policy := NewLinearFee(types.NewMilli(1, 100), types.NewMilli(1, 250))
	fee, err := policy.CalculateForTxAux(aux)
	require.NoError(t, err)

	// 1.100 + 1.250 * size, rounded up
	expected := (1100 + 1250*uint64(len(enc)) + 999) / 1000
	assert.Equal(t, types.Coin(expected), fee.ToCoin())
}

func TestLinearFeeZeroPolicy(t *testing.T) {
	fee, err := NewLinearFee(0, 0).CalculateForTxAux(unbondAux())
	require.NoError(t, err)
	assert.Equal(t, types.ZeroCoin(), fee.ToCoin())
}

func TestLinearFeeOverflow(t *testing.T) {
	policy := NewLinearFee(0, types.Milli(math.MaxUint64/2))
	_, err := policy.CalculateForTxAux(unbondAux())
	assert.ErrorIs(t, err, ErrFeeOutOfRange)

	policy = NewLinearFee(types.Milli(math.MaxUint64-10), types.NewMilli(1, 0))
	_, err = policy.CalculateForTxAux(unbondAux())
	assert.ErrorIs(t, err, ErrFeeOutOfRange)
}

func TestUnitFee(t *testing.T) {
	fee, err := UnitFee{}.CalculateForTxAux(unbondAux())
	require.NoError(t, err)
	assert.Equal(t, types.UnitCoin(), fee.ToCoin())
}
