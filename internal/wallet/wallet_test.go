package wallet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/db"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
)

const (
	testWallet     = "alice"
	testPassphrase = "correct horse battery staple"
)

func newWallet(t *testing.T) (*db.MemoryClient, *wallet.DefaultClient, wallet.EncKey) {
	store := db.NewMemoryClient()
	client := wallet.NewDefaultClient(store)
	enckey, err := client.NewWallet(context.Background(), testWallet, testPassphrase)
	require.NoError(t, err)
	return store, client, enckey
}

func TestNewWallet(t *testing.T) {
	ctx := context.Background()
	_, client, enckey := newWallet(t)
	assert.Equal(t, wallet.DeriveEncKey(testWallet, testPassphrase), enckey)
	assert.NotEqual(t, wallet.DeriveEncKey("bob", testPassphrase), enckey)

	_, err := client.NewWallet(ctx, testWallet, "other")
	assert.True(t, types.IsErrorCode(err, types.InvalidInput))

	_, err = client.NewWallet(ctx, "", testPassphrase)
	assert.True(t, types.IsErrorCode(err, types.InvalidInput))

	height, err := client.CurrentBlockHeight(ctx, testWallet)
	require.NoError(t, err)
	assert.Zero(t, height)
}

func TestStakingKeys(t *testing.T) {
	ctx := context.Background()
	_, client, enckey := newWallet(t)

	address, err := client.NewStakingAddress(ctx, testWallet, enckey)
	require.NoError(t, err)

	addresses, err := client.StakingAddresses(ctx, testWallet, enckey)
	require.NoError(t, err)
	assert.Equal(t, []chain.StakingAddress{address}, addresses)

	pub, err := client.FindStakingKey(ctx, testWallet, enckey, address)
	require.NoError(t, err)
	require.NotNil(t, pub)
	assert.Equal(t, address, pub.StakingAddress())

	private, err := client.SignKey(ctx, testWallet, enckey, pub)
	require.NoError(t, err)
	assert.True(t, pub.Equal(private.PublicKey()))

	missing, err := client.FindStakingKey(ctx, testWallet, enckey, chain.StakingAddress{1})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTransferKeys(t *testing.T) {
	ctx := context.Background()
	_, client, enckey := newWallet(t)

	address, err := client.NewTransferAddress(ctx, testWallet, enckey)
	require.NoError(t, err)

	key, err := client.FindTransferKey(ctx, testWallet, enckey, address)
	require.NoError(t, err)
	require.NotNil(t, key)
	assert.Equal(t, address, key.PublicKey().TransferAddress())

	missing, err := client.FindTransferKey(ctx, testWallet, enckey, chain.ExtendedAddr{1})
	require.NoError(t, err)
	assert.Nil(t, missing)

	// transfer keys are not staking keys
	addresses, err := client.StakingAddresses(ctx, testWallet, enckey)
	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestWrongKeyAndUnknownWallet(t *testing.T) {
	ctx := context.Background()
	_, client, _ := newWallet(t)

	wrong := wallet.DeriveEncKey(testWallet, "wrong")
	_, err := client.NewStakingAddress(ctx, testWallet, wrong)
	assert.True(t, types.IsErrorCode(err, types.InvalidInput))
	assert.ErrorContains(t, err, "Incorrect encryption key")

	_, err = client.StakingAddresses(ctx, "bob", wrong)
	assert.True(t, types.IsErrorCode(err, types.InvalidInput))
	assert.ErrorContains(t, err, "Wallet not found")

	_, err = client.CurrentBlockHeight(ctx, "bob")
	assert.True(t, types.IsErrorCode(err, types.InvalidInput))
}

func TestReadOnlyWallet(t *testing.T) {
	ctx := context.Background()
	store, client, enckey := newWallet(t)
	address, err := client.NewStakingAddress(ctx, testWallet, enckey)
	require.NoError(t, err)

	readOnly := wallet.NewReadOnlyClient(store)

	// keys stay usable
	pub, err := readOnly.FindStakingKey(ctx, testWallet, enckey, address)
	require.NoError(t, err)
	require.NotNil(t, pub)
	_, err = readOnly.SignKey(ctx, testWallet, enckey, pub)
	require.NoError(t, err)

	_, err = readOnly.CurrentBlockHeight(ctx, testWallet)
	assert.True(t, types.IsErrorCode(err, types.PermissionDenied))
	_, err = readOnly.NewStakingAddress(ctx, testWallet, enckey)
	assert.True(t, types.IsErrorCode(err, types.PermissionDenied))
	err = readOnly.SetSyncHeight(ctx, testWallet, 3)
	assert.True(t, types.IsErrorCode(err, types.PermissionDenied))
	err = readOnly.SavePendingTransaction(ctx, testWallet, chain.TxID{1}, chain.TransactionPending{})
	assert.True(t, types.IsErrorCode(err, types.PermissionDenied))
}

func TestPendingTransactions(t *testing.T) {
	ctx := context.Background()
	_, client, _ := newWallet(t)

	require.NoError(t, client.SetSyncHeight(ctx, testWallet, 11))
	height, err := client.CurrentBlockHeight(ctx, testWallet)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), height)

	deposit := chain.TransactionPending{
		BlockHeight:  10,
		UsedInputs:   []chain.TxoPointer{chain.NewTxoPointer(chain.TxID{7}, 2)},
		ReturnAmount: 0,
	}
	withdraw := chain.TransactionPending{
		BlockHeight:  11,
		UsedInputs:   []chain.TxoPointer{},
		ReturnAmount: 2499999999999999999,
	}
	require.NoError(t, client.SavePendingTransaction(ctx, testWallet, chain.TxID{1}, deposit))
	require.NoError(t, client.SavePendingTransaction(ctx, testWallet, chain.TxID{2}, withdraw))

	err = client.SavePendingTransaction(ctx, testWallet, chain.TxID{1}, deposit)
	assert.True(t, types.IsErrorCode(err, types.InvalidInput))

	pending, err := client.PendingTransactions(ctx, testWallet)
	require.NoError(t, err)
	assert.Equal(t, []wallet.PendingTransaction{
		{TxID: chain.TxID{2}, TransactionPending: withdraw},
		{TxID: chain.TxID{1}, TransactionPending: deposit},
	}, pending)
}
