package chain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/babylonchain/staking-ops-client/internal/types"
)

const (
	depositBondTxTag byte = iota + 1
	unbondTxTag
	withdrawUnbondedTxTag
	unjailTxTag
	nodeJoinTxTag
)

// Transaction is an unsigned staking operation body. The set of
// implementations is closed.
type Transaction interface {
	ID() TxID
	isTransaction()
}

func txID(tag byte, body interface{}) TxID {
	// encoding the fixed body structs cannot fail
	enc, _ := rlp.EncodeToBytes(body)
	return chainhash.HashH(append([]byte{tag}, enc...))
}

// DepositBondTx bonds the value of the given transfer outputs to a staking account.
type DepositBondTx struct {
	Inputs     []TxoPointer
	To         StakingAddress
	Attributes StakingOpAttributes
}

func NewDepositBondTx(inputs []TxoPointer, to StakingAddress, attributes StakingOpAttributes) DepositBondTx {
	return DepositBondTx{Inputs: inputs, To: to, Attributes: attributes}
}

func (tx DepositBondTx) ID() TxID { return txID(depositBondTxTag, tx) }
func (DepositBondTx) isTransaction() {}

// UnbondTx moves bonded stake into the unbonded balance.
type UnbondTx struct {
	From       StakingAddress
	Nonce      Nonce
	Value      types.Coin
	Attributes StakingOpAttributes
}

func NewUnbondTx(from StakingAddress, nonce Nonce, value types.Coin, attributes StakingOpAttributes) UnbondTx {
	return UnbondTx{From: from, Nonce: nonce, Value: value, Attributes: attributes}
}

func (tx UnbondTx) ID() TxID { return txID(unbondTxTag, tx) }
func (UnbondTx) isTransaction() {}

// WithdrawUnbondedTx pays matured unbonded stake out to transfer outputs.
type WithdrawUnbondedTx struct {
	Nonce      Nonce
	Outputs    []TxOut
	Attributes TxAttributes
}

func NewWithdrawUnbondedTx(nonce Nonce, outputs []TxOut, attributes TxAttributes) WithdrawUnbondedTx {
	return WithdrawUnbondedTx{Nonce: nonce, Outputs: outputs, Attributes: attributes}
}

func (tx WithdrawUnbondedTx) ID() TxID { return txID(withdrawUnbondedTxTag, tx) }
func (WithdrawUnbondedTx) isTransaction() {}

// UnjailTx clears the jail marker of a staking account.
type UnjailTx struct {
	Nonce      Nonce
	Address    StakingAddress
	Attributes StakingOpAttributes
}

func NewUnjailTx(nonce Nonce, address StakingAddress, attributes StakingOpAttributes) UnjailTx {
	return UnjailTx{Nonce: nonce, Address: address, Attributes: attributes}
}

func (tx UnjailTx) ID() TxID { return txID(unjailTxTag, tx) }
func (UnjailTx) isTransaction() {}

// NodeJoinRequestTx requests council membership for the node described by NodeMeta.
type NodeJoinRequestTx struct {
	Nonce      Nonce
	Address    StakingAddress
	Attributes StakingOpAttributes
	NodeMeta   CouncilNode
}

func NewNodeJoinRequestTx(nonce Nonce, address StakingAddress, attributes StakingOpAttributes, node CouncilNode) NodeJoinRequestTx {
	return NodeJoinRequestTx{Nonce: nonce, Address: address, Attributes: attributes, NodeMeta: node}
}

func (tx NodeJoinRequestTx) ID() TxID { return txID(nodeJoinTxTag, tx) }
func (NodeJoinRequestTx) isTransaction() {}
