package types_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/staking-ops-client/internal/types"
)

func TestCoinArithmetic(t *testing.T) {
	sum, err := types.Coin(2).Add(3)
	require.NoError(t, err)
	assert.Equal(t, types.Coin(5), sum)

	_, err = types.MaxCoin.Add(1)
	assert.ErrorIs(t, err, types.ErrCoinOverflow)
	_, err = types.Coin(math.MaxUint64).Add(1)
	assert.ErrorIs(t, err, types.ErrCoinOverflow)

	diff, err := types.Coin(2500000000000000000).Sub(types.UnitCoin())
	require.NoError(t, err)
	assert.Equal(t, "2499999999999999999", diff.String())

	_, err = types.ZeroCoin().Sub(1)
	assert.ErrorIs(t, err, types.ErrCoinUnderflow)

	total, err := types.SumCoins(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, types.Coin(6), total)
	_, err = types.SumCoins(types.MaxCoin, 1)
	assert.Error(t, err)
}

func TestParseCoin(t *testing.T) {
	c, err := types.ParseCoin("1000000")
	require.NoError(t, err)
	assert.Equal(t, types.Coin(1000000), c)

	_, err = types.ParseCoin("-1")
	assert.Error(t, err)
	_, err = types.ParseCoin(fmt.Sprint(uint64(types.MaxCoin) + 1))
	assert.ErrorIs(t, err, types.ErrCoinOutOfRange)
}

func TestCoinRLP(t *testing.T) {
	zero, err := rlp.EncodeToBytes(types.ZeroCoin())
	require.NoError(t, err)
	large, err := rlp.EncodeToBytes(types.MaxCoin)
	require.NoError(t, err)
	assert.Len(t, zero, 9)
	assert.Len(t, large, len(zero))

	var c types.Coin
	require.NoError(t, rlp.DecodeBytes(large, &c))
	assert.Equal(t, types.MaxCoin, c)

	oversized, err := rlp.EncodeToBytes(types.MaxCoin + 1)
	require.NoError(t, err)
	assert.ErrorIs(t, rlp.DecodeBytes(oversized, &c), types.ErrCoinOutOfRange)

	// a minimal integer encoding is not a coin
	assert.Error(t, rlp.DecodeBytes([]byte{0x05}, &c))
}

func TestMilli(t *testing.T) {
	m, err := types.ParseMilli("1.25")
	require.NoError(t, err)
	assert.Equal(t, types.NewMilli(1, 250), m)
	assert.Equal(t, "1.250", m.String())
	assert.Equal(t, uint64(2), m.Ceil())
	assert.Equal(t, uint64(3), types.NewMilli(3, 0).Ceil())

	m, err = types.ParseMilli("0.001")
	require.NoError(t, err)
	assert.Equal(t, types.Milli(1), m)

	for _, invalid := range []string{"", "1.", "1.2345", "x", "18446744073709551615"} {
		_, err := types.ParseMilli(invalid)
		assert.Error(t, err, invalid)
	}

	_, err = types.Milli(math.MaxUint64).Add(1)
	assert.ErrorIs(t, err, types.ErrCoinOverflow)
	_, err = types.Milli(math.MaxUint64 / 2).MulInt(3)
	assert.ErrorIs(t, err, types.ErrCoinOverflow)
}

func TestErrorCodes(t *testing.T) {
	err := types.NewErrorWithMsg(types.ValidationError, "jailed")
	wrapped := fmt.Errorf("building: %w", err)

	assert.True(t, types.IsErrorCode(wrapped, types.ValidationError))
	assert.False(t, types.IsErrorCode(wrapped, types.InvalidInput))
	assert.Same(t, err, types.AsError(wrapped))

	plain := errors.New("boom")
	assert.Equal(t, types.InternalServiceError, types.AsError(plain).ErrorCode)
	assert.ErrorIs(t, types.AsError(plain), plain)
	assert.Nil(t, types.AsError(nil))

	assert.Equal(t, types.InternalServiceError, types.NewError("", plain).ErrorCode)
}
