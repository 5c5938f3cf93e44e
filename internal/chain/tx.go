package chain

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/babylonchain/staking-ops-client/internal/types"
)

// Timespec is a unix timestamp in seconds.
type Timespec uint64

func TimespecFromTime(t time.Time) Timespec {
	if t.Before(time.Unix(0, 0)) {
		return 0
	}
	return Timespec(t.Unix())
}

// TxID is the identifier of a transaction body.
type TxID = chainhash.Hash

// FormatTxID hex encodes id in byte order. chainhash.Hash.String reverses
// the bytes, which the ledger does not.
func FormatTxID(id TxID) string {
	return hex.EncodeToString(id[:])
}

func ParseTxID(s string) (TxID, error) {
	var id TxID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("invalid transaction id %q: %w", s, err)
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("invalid transaction id %q: expected %d bytes, got %d", s, len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}

// TxoPointer references an output of an earlier transaction.
type TxoPointer struct {
	ID    TxID
	Index uint16
}

func NewTxoPointer(id TxID, index uint16) TxoPointer {
	return TxoPointer{ID: id, Index: index}
}

func (p TxoPointer) String() string {
	return fmt.Sprintf("%s:%d", FormatTxID(p.ID), p.Index)
}

// TxOut is a transaction output. ValidFrom, when set, is the earliest time the
// output can be spent.
type TxOut struct {
	Address   ExtendedAddr
	Value     types.Coin
	ValidFrom *Timespec `rlp:"nilList"`
}

func NewTxOut(address ExtendedAddr, value types.Coin) TxOut {
	return TxOut{Address: address, Value: value}
}

func NewTxOutWithTimelock(address ExtendedAddr, value types.Coin, validFrom Timespec) TxOut {
	return TxOut{Address: address, Value: value, ValidFrom: &validFrom}
}

// UnspentOutput pairs a spendable output with the pointer locating it.
type UnspentOutput struct {
	Pointer TxoPointer
	Output  TxOut
}

// TxAccessPolicy grants a view key access to a confidential transaction.
type TxAccessPolicy struct {
	ViewKey [33]byte
	Access  uint8
}

// TxAttributes are carried by transactions which move funds out of staking.
type TxAttributes struct {
	ChainHexID  uint8
	AllowedView []TxAccessPolicy
}

func NewTxAttributes(chainHexID uint8) TxAttributes {
	return TxAttributes{ChainHexID: chainHexID, AllowedView: []TxAccessPolicy{}}
}

// StakingOpAttributes are carried by operations on a staking account.
type StakingOpAttributes struct {
	ChainHexID uint8
	AppVersion uint64
}

func NewStakingOpAttributes(chainHexID uint8) StakingOpAttributes {
	return StakingOpAttributes{ChainHexID: chainHexID}
}

// TransactionPending is the wallet bookkeeping record of a built transaction
// awaiting confirmation.
type TransactionPending struct {
	BlockHeight  uint64
	UsedInputs   []TxoPointer
	ReturnAmount types.Coin
}
