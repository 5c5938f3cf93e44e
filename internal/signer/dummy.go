package signer

import (
	"errors"
	"fmt"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/obfuscation"
)

var ErrNoInputs = errors.New("cannot mock a transaction without inputs")

// DummySigner builds envelopes with the exact shape of signed and sealed
// ones, so fees can be computed before any real signature exists.
type DummySigner struct{}

func (DummySigner) mockStakingWitness() chain.StakingOpWitness {
	var w chain.StakingOpWitness
	for i := range w {
		w[i] = 0xff
	}
	return w
}

func (DummySigner) mockTxInWitness() chain.TxInWitness {
	var w chain.TxInWitness
	for i := range w.PubKey {
		w.PubKey[i] = 0xff
	}
	for i := range w.Signature {
		w.Signature[i] = 0xff
	}
	return w
}

func (DummySigner) mockPayload(txid chain.TxID, plain chain.PlainTxAux) (chain.TxObfuscated, error) {
	enc, err := chain.EncodePlainTxAux(plain)
	if err != nil {
		return chain.TxObfuscated{}, fmt.Errorf("failed to encode mock payload: %w", err)
	}
	return chain.TxObfuscated{
		TxID:    txid,
		Payload: make([]byte, obfuscation.SealedSize(len(enc))),
	}, nil
}

func (d DummySigner) MockTxAuxForWithdraw(tx chain.WithdrawUnbondedTx) (chain.TxAux, error) {
	payload, err := d.mockPayload(tx.ID(), &chain.PlainWithdrawUnbondedStakeTx{Tx: tx})
	if err != nil {
		return nil, err
	}
	return &chain.WithdrawUnbondedStakeTxAux{
		NoOfOutputs: uint16(len(tx.Outputs)),
		Witness:     d.mockStakingWitness(),
		Payload:     payload,
	}, nil
}

// MockTxAuxForDeposit mocks a deposit spending inputs, with a zero staking
// address and zero attributes.
func (d DummySigner) MockTxAuxForDeposit(inputs []chain.UnspentOutput) (chain.TxAux, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	pointers := SelectedUnspentTransactions(inputs).Pointers()
	tx := chain.NewDepositBondTx(pointers, chain.StakingAddress{}, chain.StakingOpAttributes{})
	witness := make(chain.TxWitness, len(inputs))
	for i := range witness {
		witness[i] = d.mockTxInWitness()
	}
	payload, err := d.mockPayload(tx.ID(), &chain.PlainDepositStakeTx{Witness: witness})
	if err != nil {
		return nil, err
	}
	return &chain.DepositStakeTxAux{Tx: tx, Payload: payload}, nil
}

// DummyUnspentOutput is a placeholder input for fee estimation.
func DummyUnspentOutput() chain.UnspentOutput {
	return chain.UnspentOutput{
		Pointer: chain.NewTxoPointer(chain.TxID{}, 0),
		Output:  chain.NewTxOut(chain.ExtendedAddr{}, 0),
	}
}
