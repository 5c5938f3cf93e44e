// Package wallet keeps the staking and transfer keys of named wallets and
// the wallet bookkeeping of transactions awaiting confirmation.
package wallet

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/db"
	"github.com/babylonchain/staking-ops-client/internal/db/model"
	"github.com/babylonchain/staking-ops-client/internal/keys"
	"github.com/babylonchain/staking-ops-client/internal/types"
)

var keyCheckPlaintext = []byte("staking-ops-client key check")

// Client gives access to the keys of a wallet.
type Client interface {
	NewWallet(ctx context.Context, name, passphrase string) (EncKey, error)
	NewStakingAddress(ctx context.Context, name string, enckey EncKey) (chain.StakingAddress, error)
	NewTransferAddress(ctx context.Context, name string, enckey EncKey) (chain.ExtendedAddr, error)
	StakingAddresses(ctx context.Context, name string, enckey EncKey) ([]chain.StakingAddress, error)
	// FindStakingKey returns nil when address does not belong to the wallet.
	FindStakingKey(ctx context.Context, name string, enckey EncKey, address chain.StakingAddress) (*keys.PublicKey, error)
	SignKey(ctx context.Context, name string, enckey EncKey, pub *keys.PublicKey) (*keys.PrivateKey, error)
	// FindTransferKey returns nil when address does not belong to the wallet.
	FindTransferKey(ctx context.Context, name string, enckey EncKey, address chain.ExtendedAddr) (*keys.PrivateKey, error)
	CurrentBlockHeight(ctx context.Context, name string) (uint64, error)
	SetSyncHeight(ctx context.Context, name string, height uint64) error
	SavePendingTransaction(ctx context.Context, name string, txid chain.TxID, pending chain.TransactionPending) error
	PendingTransactions(ctx context.Context, name string) ([]PendingTransaction, error)
}

type PendingTransaction struct {
	TxID chain.TxID
	chain.TransactionPending
}

type DefaultClient struct {
	store    db.DBClient
	readOnly bool
}

func NewDefaultClient(store db.DBClient) *DefaultClient {
	return &DefaultClient{store: store}
}

// NewReadOnlyClient returns a client which can sign with existing keys but
// has no access to the sync state and cannot modify the wallet.
func NewReadOnlyClient(store db.DBClient) *DefaultClient {
	return &DefaultClient{store: store, readOnly: true}
}

func (c *DefaultClient) NewWallet(ctx context.Context, name, passphrase string) (EncKey, error) {
	if err := c.checkWritable(); err != nil {
		return EncKey{}, err
	}
	if name == "" {
		return EncKey{}, types.NewErrorWithMsg(types.InvalidInput, "Wallet name cannot be empty")
	}
	enckey := DeriveEncKey(name, passphrase)
	keyCheck, err := enckey.seal(keyCheckPlaintext)
	if err != nil {
		return EncKey{}, types.NewInternalServiceError(err)
	}
	err = c.store.SaveWallet(ctx, model.WalletDocument{
		Name:      name,
		KeyCheck:  keyCheck,
		Keys:      []model.WalletKeyDocument{},
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		if db.IsDuplicateKeyError(err) {
			return EncKey{}, types.NewErrorWithMsg(
				types.InvalidInput, fmt.Sprintf("Wallet with name %s already exists", name),
			)
		}
		log.Ctx(ctx).Error().Err(err).Str("wallet", name).Msg("failed to save wallet")
		return EncKey{}, types.NewInternalServiceError(err)
	}
	return enckey, nil
}

func (c *DefaultClient) NewStakingAddress(ctx context.Context, name string, enckey EncKey) (chain.StakingAddress, error) {
	pub, err := c.newKey(ctx, name, enckey, model.StakingKeyKind)
	if err != nil {
		return chain.StakingAddress{}, err
	}
	return pub.StakingAddress(), nil
}

func (c *DefaultClient) NewTransferAddress(ctx context.Context, name string, enckey EncKey) (chain.ExtendedAddr, error) {
	pub, err := c.newKey(ctx, name, enckey, model.TransferKeyKind)
	if err != nil {
		return chain.ExtendedAddr{}, err
	}
	return pub.TransferAddress(), nil
}

func (c *DefaultClient) StakingAddresses(ctx context.Context, name string, enckey EncKey) ([]chain.StakingAddress, error) {
	wallet, err := c.load(ctx, name, enckey)
	if err != nil {
		return nil, err
	}
	var addresses []chain.StakingAddress
	for _, key := range wallet.Keys {
		if key.Kind != model.StakingKeyKind {
			continue
		}
		address, err := chain.ParseStakingAddress(key.Address)
		if err != nil {
			return nil, types.NewError(types.DeserializationError, err)
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}

func (c *DefaultClient) FindStakingKey(
	ctx context.Context, name string, enckey EncKey, address chain.StakingAddress,
) (*keys.PublicKey, error) {
	key, err := c.findKey(ctx, name, enckey, model.StakingKeyKind, address.String())
	if err != nil || key == nil {
		return nil, err
	}
	return parsePublicKey(key)
}

func (c *DefaultClient) SignKey(
	ctx context.Context, name string, enckey EncKey, pub *keys.PublicKey,
) (*keys.PrivateKey, error) {
	wallet, err := c.load(ctx, name, enckey)
	if err != nil {
		return nil, err
	}
	pubHex := pub.String()
	for i := range wallet.Keys {
		if wallet.Keys[i].PublicKeyHex == pubHex {
			return openPrivateKey(enckey, &wallet.Keys[i])
		}
	}
	return nil, types.NewErrorWithMsg(types.InvalidInput, "Public key not found in current wallet")
}

func (c *DefaultClient) FindTransferKey(
	ctx context.Context, name string, enckey EncKey, address chain.ExtendedAddr,
) (*keys.PrivateKey, error) {
	key, err := c.findKey(ctx, name, enckey, model.TransferKeyKind, address.String())
	if err != nil || key == nil {
		return nil, err
	}
	return openPrivateKey(enckey, key)
}

func (c *DefaultClient) CurrentBlockHeight(ctx context.Context, name string) (uint64, error) {
	if c.readOnly {
		return 0, types.NewErrorWithMsg(types.PermissionDenied, "Read-only wallet has no sync state")
	}
	height, err := c.store.FindSyncHeight(ctx, name)
	if err != nil {
		if db.IsNotFoundError(err) {
			return 0, walletNotFound()
		}
		return 0, types.NewInternalServiceError(err)
	}
	return height, nil
}

func (c *DefaultClient) SetSyncHeight(ctx context.Context, name string, height uint64) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	if _, err := c.store.FindWalletByName(ctx, name); err != nil {
		return storeError(err)
	}
	if err := c.store.SaveSyncHeight(ctx, name, height); err != nil {
		return types.NewInternalServiceError(err)
	}
	return nil
}

func (c *DefaultClient) SavePendingTransaction(
	ctx context.Context, name string, txid chain.TxID, pending chain.TransactionPending,
) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	inputs := make([]model.TxoPointerDocument, 0, len(pending.UsedInputs))
	for _, in := range pending.UsedInputs {
		inputs = append(inputs, model.TxoPointerDocument{TxIDHex: chain.FormatTxID(in.ID), Index: in.Index})
	}
	err := c.store.SavePendingTransaction(ctx, model.PendingTransactionDocument{
		TxIDHex:      chain.FormatTxID(txid),
		WalletName:   name,
		BlockHeight:  pending.BlockHeight,
		UsedInputs:   inputs,
		ReturnAmount: pending.ReturnAmount.String(),
	})
	if err != nil {
		if db.IsDuplicateKeyError(err) {
			return types.NewErrorWithMsg(
				types.InvalidInput, fmt.Sprintf("Transaction %s is already pending", chain.FormatTxID(txid)),
			)
		}
		return types.NewInternalServiceError(err)
	}
	return nil
}

func (c *DefaultClient) PendingTransactions(ctx context.Context, name string) ([]PendingTransaction, error) {
	docs, err := c.store.FindPendingTransactions(ctx, name)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}
	result := make([]PendingTransaction, 0, len(docs))
	for _, doc := range docs {
		pending, err := pendingFromDocument(doc)
		if err != nil {
			return nil, types.NewError(types.DeserializationError, err)
		}
		result = append(result, pending)
	}
	return result, nil
}

func (c *DefaultClient) newKey(ctx context.Context, name string, enckey EncKey, kind string) (*keys.PublicKey, error) {
	if err := c.checkWritable(); err != nil {
		return nil, err
	}
	if _, err := c.load(ctx, name, enckey); err != nil {
		return nil, err
	}
	private, err := keys.NewPrivateKey()
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}
	sealed, err := enckey.seal(private.Serialize())
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}
	pub := private.PublicKey()
	address := pub.StakingAddress().String()
	if kind == model.TransferKeyKind {
		address = pub.TransferAddress().String()
	}
	err = c.store.SaveWalletKey(ctx, name, model.WalletKeyDocument{
		Kind:         kind,
		PublicKeyHex: pub.String(),
		Address:      address,
		SealedKey:    sealed,
	})
	if err != nil {
		return nil, storeError(err)
	}
	log.Ctx(ctx).Debug().Str("wallet", name).Str("kind", kind).Str("address", address).Msg("new key generated")
	return pub, nil
}

func (c *DefaultClient) findKey(
	ctx context.Context, name string, enckey EncKey, kind, address string,
) (*model.WalletKeyDocument, error) {
	wallet, err := c.load(ctx, name, enckey)
	if err != nil {
		return nil, err
	}
	for i := range wallet.Keys {
		if wallet.Keys[i].Kind == kind && wallet.Keys[i].Address == address {
			return &wallet.Keys[i], nil
		}
	}
	return nil, nil
}

// load fetches the wallet and checks enckey against it.
func (c *DefaultClient) load(ctx context.Context, name string, enckey EncKey) (*model.WalletDocument, error) {
	wallet, err := c.store.FindWalletByName(ctx, name)
	if err != nil {
		return nil, storeError(err)
	}
	if _, err := enckey.open(wallet.KeyCheck); err != nil {
		return nil, types.NewErrorWithMsg(types.InvalidInput, "Incorrect encryption key for wallet "+name)
	}
	return wallet, nil
}

func (c *DefaultClient) checkWritable() error {
	if c.readOnly {
		return types.NewErrorWithMsg(types.PermissionDenied, "Wallet is opened read-only")
	}
	return nil
}

func walletNotFound() *types.Error {
	return types.NewErrorWithMsg(types.InvalidInput, "Wallet not found")
}

func storeError(err error) error {
	if db.IsNotFoundError(err) {
		return walletNotFound()
	}
	return types.NewInternalServiceError(err)
}

func parsePublicKey(key *model.WalletKeyDocument) (*keys.PublicKey, error) {
	b, err := hex.DecodeString(key.PublicKeyHex)
	if err != nil {
		return nil, types.NewError(types.DeserializationError, err)
	}
	pub, err := keys.ParsePublicKey(b)
	if err != nil {
		return nil, types.NewError(types.DeserializationError, err)
	}
	return pub, nil
}

func openPrivateKey(enckey EncKey, key *model.WalletKeyDocument) (*keys.PrivateKey, error) {
	b, err := enckey.open(key.SealedKey)
	if err != nil {
		return nil, types.NewError(types.InvalidInput, fmt.Errorf("unable to decrypt key for %s: %w", key.Address, err))
	}
	private, err := keys.PrivateKeyFromBytes(b)
	if err != nil {
		return nil, types.NewError(types.DeserializationError, err)
	}
	return private, nil
}

func pendingFromDocument(doc model.PendingTransactionDocument) (PendingTransaction, error) {
	var pending PendingTransaction
	txid, err := chain.ParseTxID(doc.TxIDHex)
	if err != nil {
		return pending, err
	}
	amount, err := types.ParseCoin(doc.ReturnAmount)
	if err != nil {
		return pending, err
	}
	inputs := make([]chain.TxoPointer, 0, len(doc.UsedInputs))
	for _, in := range doc.UsedInputs {
		id, err := chain.ParseTxID(in.TxIDHex)
		if err != nil {
			return pending, err
		}
		inputs = append(inputs, chain.NewTxoPointer(id, in.Index))
	}
	pending.TxID = txid
	pending.TransactionPending = chain.TransactionPending{
		BlockHeight:  doc.BlockHeight,
		UsedInputs:   inputs,
		ReturnAmount: amount,
	}
	return pending, nil
}
