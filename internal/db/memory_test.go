package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/staking-ops-client/internal/db"
	"github.com/babylonchain/staking-ops-client/internal/db/model"
)

func TestMemoryClientWallets(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryClient()

	_, err := store.FindWalletByName(ctx, "alice")
	assert.True(t, db.IsNotFoundError(err))

	require.NoError(t, store.SaveWallet(ctx, model.WalletDocument{Name: "alice", KeyCheck: []byte{1}}))
	err = store.SaveWallet(ctx, model.WalletDocument{Name: "alice"})
	assert.True(t, db.IsDuplicateKeyError(err))

	height, err := store.FindSyncHeight(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, height)

	key := model.WalletKeyDocument{Kind: model.StakingKeyKind, Address: "0xabc"}
	require.NoError(t, store.SaveWalletKey(ctx, "alice", key))
	assert.True(t, db.IsNotFoundError(store.SaveWalletKey(ctx, "bob", key)))

	wallet, err := store.FindWalletByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []model.WalletKeyDocument{key}, wallet.Keys)

	// returned documents do not alias the stored ones
	wallet.Keys[0].Address = "changed"
	again, err := store.FindWalletByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", again.Keys[0].Address)

	require.NoError(t, store.SaveSyncHeight(ctx, "alice", 12))
	height, err = store.FindSyncHeight(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), height)
}

func TestMemoryClientPendingTransactions(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryClient()

	for _, p := range []model.PendingTransactionDocument{
		{TxIDHex: "02", WalletName: "alice", BlockHeight: 5, ReturnAmount: "0"},
		{TxIDHex: "01", WalletName: "alice", BlockHeight: 5, ReturnAmount: "0"},
		{TxIDHex: "03", WalletName: "alice", BlockHeight: 9, ReturnAmount: "10"},
		{TxIDHex: "04", WalletName: "bob", BlockHeight: 1, ReturnAmount: "0"},
	} {
		require.NoError(t, store.SavePendingTransaction(ctx, p))
	}
	err := store.SavePendingTransaction(ctx, model.PendingTransactionDocument{TxIDHex: "01", WalletName: "alice"})
	assert.True(t, db.IsDuplicateKeyError(err))

	pending, err := store.FindPendingTransactions(ctx, "alice")
	require.NoError(t, err)
	ids := make([]string, 0, len(pending))
	for _, p := range pending {
		ids = append(ids, p.TxIDHex)
	}
	assert.Equal(t, []string{"03", "01", "02"}, ids)
}
