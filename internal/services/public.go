package services

import (
	"encoding/hex"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
)

// Public views are what the CLI prints and the HTTP gateway returns.

type StakedStatePublic struct {
	Address      string  `json:"address"`
	Nonce        uint64  `json:"nonce"`
	Bonded       string  `json:"bonded"`
	Unbonded     string  `json:"unbonded"`
	UnbondedFrom uint64  `json:"unbonded_from"`
	JailedUntil  *uint64 `json:"jailed_until,omitempty"`
	CouncilNode  string  `json:"council_node,omitempty"`
}

type PendingTransactionPublic struct {
	TxID         string   `json:"txid"`
	BlockHeight  uint64   `json:"block_height"`
	UsedInputs   []string `json:"used_inputs"`
	ReturnAmount string   `json:"return_amount"`
	Saved        bool     `json:"saved"`
}

type EnvelopePublic struct {
	TxID    string                    `json:"txid"`
	Kind    string                    `json:"kind"`
	TxHex   string                    `json:"tx_hex"`
	Pending *PendingTransactionPublic `json:"pending,omitempty"`
}

func NewStakedStatePublic(state *chain.StakedState) *StakedStatePublic {
	out := &StakedStatePublic{
		Address:      state.Address.String(),
		Nonce:        uint64(state.Nonce),
		Bonded:       state.Bonded.String(),
		Unbonded:     state.Unbonded.String(),
		UnbondedFrom: uint64(state.UnbondedFrom),
	}
	if until, jailed := state.JailedUntil(); jailed {
		v := uint64(until)
		out.JailedUntil = &v
	}
	if state.Validator != nil {
		out.CouncilNode = state.Validator.CouncilNode.Name
	}
	return out
}

func NewPendingTransactionPublic(txid chain.TxID, pending chain.TransactionPending) *PendingTransactionPublic {
	inputs := make([]string, 0, len(pending.UsedInputs))
	for _, in := range pending.UsedInputs {
		inputs = append(inputs, in.String())
	}
	return &PendingTransactionPublic{
		TxID:         chain.FormatTxID(txid),
		BlockHeight:  pending.BlockHeight,
		UsedInputs:   inputs,
		ReturnAmount: pending.ReturnAmount.String(),
	}
}

// PendingTransactionsPublic describes records already stored by the wallet.
func PendingTransactionsPublic(pending []wallet.PendingTransaction) []*PendingTransactionPublic {
	out := make([]*PendingTransactionPublic, 0, len(pending))
	for _, p := range pending {
		o := NewPendingTransactionPublic(p.TxID, p.TransactionPending)
		o.Saved = true
		out = append(out, o)
	}
	return out
}

func NewEnvelopePublic(aux chain.TxAux) (*EnvelopePublic, error) {
	b, err := chain.EncodeTxAux(aux)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}
	return &EnvelopePublic{
		TxID:  chain.FormatTxID(aux.TxID()),
		Kind:  aux.Kind().String(),
		TxHex: hex.EncodeToString(b),
	}, nil
}
