// Package signer produces the input witnesses of transfer-funded
// transactions and the mock envelopes used for fee estimation.
package signer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
)

// UnspentTransactions is the set of outputs a caller offers for spending.
type UnspentTransactions struct {
	outputs []chain.UnspentOutput
}

func NewUnspentTransactions(outputs []chain.UnspentOutput) *UnspentTransactions {
	return &UnspentTransactions{outputs: outputs}
}

// SelectAll selects every offered output, in order.
func (u *UnspentTransactions) SelectAll() SelectedUnspentTransactions {
	return append(SelectedUnspentTransactions(nil), u.outputs...)
}

// SelectedUnspentTransactions are the outputs a transaction spends, in input order.
type SelectedUnspentTransactions []chain.UnspentOutput

func (s SelectedUnspentTransactions) Pointers() []chain.TxoPointer {
	pointers := make([]chain.TxoPointer, 0, len(s))
	for _, u := range s {
		pointers = append(pointers, u.Pointer)
	}
	return pointers
}

type Signer interface {
	SchnorrSignTransaction(ctx context.Context, tx chain.Transaction, selected SelectedUnspentTransactions) (chain.TxWitness, error)
}

type Manager interface {
	CreateSigner(name string, enckey wallet.EncKey) Signer
}

type WalletSignerManager struct {
	wallet wallet.Client
}

func NewWalletSignerManager(w wallet.Client) *WalletSignerManager {
	return &WalletSignerManager{wallet: w}
}

func (m *WalletSignerManager) CreateSigner(name string, enckey wallet.EncKey) Signer {
	return &WalletSigner{wallet: m.wallet, name: name, enckey: enckey}
}

// WalletSigner signs with the transfer keys of one wallet.
type WalletSigner struct {
	wallet wallet.Client
	name   string
	enckey wallet.EncKey
}

func (s *WalletSigner) SchnorrSignTransaction(
	ctx context.Context, tx chain.Transaction, selected SelectedUnspentTransactions,
) (chain.TxWitness, error) {
	witness := make(chain.TxWitness, 0, len(selected))
	for _, unspent := range selected {
		key, err := s.wallet.FindTransferKey(ctx, s.name, s.enckey, unspent.Output.Address)
		if err != nil {
			return nil, err
		}
		if key == nil {
			log.Ctx(ctx).Warn().Str("address", unspent.Output.Address.String()).
				Msg("transfer address of the spent output is not in the wallet")
			return nil, types.NewErrorWithMsg(
				types.InvalidInput,
				fmt.Sprintf("Transfer address %s not found in current wallet", unspent.Output.Address),
			)
		}
		w, err := key.SchnorrSign(tx)
		if err != nil {
			return nil, types.NewInternalServiceError(err)
		}
		witness = append(witness, w)
	}
	return witness, nil
}
