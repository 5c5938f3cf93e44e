package chain

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

// EnvelopeKind tells whether a transaction is broadcast in clear or wrapped
// for the enclave.
type EnvelopeKind uint8

const (
	PublicEnvelope EnvelopeKind = iota
	EnclaveEnvelope
)

func (k EnvelopeKind) String() string {
	switch k {
	case PublicEnvelope:
		return "public"
	case EnclaveEnvelope:
		return "enclave"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

const (
	depositStakeAuxTag byte = iota + 1
	withdrawUnbondedAuxTag
	unbondStakeAuxTag
	unjailAuxTag
	nodeJoinAuxTag
)

var ErrUnknownEnvelope = errors.New("unknown transaction envelope")

// TxObfuscated is a payload sealed for the enclave.
type TxObfuscated struct {
	TxID       TxID
	KeyFrom    BlockHeight
	InitVector [12]byte
	Payload    []byte
}

// TxAux is a broadcast-ready transaction. The set of implementations is closed.
type TxAux interface {
	Kind() EnvelopeKind
	TxID() TxID
	tag() byte
}

type DepositStakeTxAux struct {
	Tx      DepositBondTx
	Payload TxObfuscated
}

func (*DepositStakeTxAux) Kind() EnvelopeKind { return EnclaveEnvelope }
func (a *DepositStakeTxAux) TxID() TxID       { return a.Payload.TxID }
func (*DepositStakeTxAux) tag() byte          { return depositStakeAuxTag }

type WithdrawUnbondedStakeTxAux struct {
	NoOfOutputs uint16
	Witness     StakingOpWitness
	Payload     TxObfuscated
}

func (*WithdrawUnbondedStakeTxAux) Kind() EnvelopeKind { return EnclaveEnvelope }
func (a *WithdrawUnbondedStakeTxAux) TxID() TxID       { return a.Payload.TxID }
func (*WithdrawUnbondedStakeTxAux) tag() byte          { return withdrawUnbondedAuxTag }

type UnbondStakeTxAux struct {
	Tx      UnbondTx
	Witness StakingOpWitness
}

func (*UnbondStakeTxAux) Kind() EnvelopeKind { return PublicEnvelope }
func (a *UnbondStakeTxAux) TxID() TxID       { return a.Tx.ID() }
func (*UnbondStakeTxAux) tag() byte          { return unbondStakeAuxTag }

type UnjailTxAux struct {
	Tx      UnjailTx
	Witness StakingOpWitness
}

func (*UnjailTxAux) Kind() EnvelopeKind { return PublicEnvelope }
func (a *UnjailTxAux) TxID() TxID       { return a.Tx.ID() }
func (*UnjailTxAux) tag() byte          { return unjailAuxTag }

type NodeJoinTxAux struct {
	Tx      NodeJoinRequestTx
	Witness StakingOpWitness
}

func (*NodeJoinTxAux) Kind() EnvelopeKind { return PublicEnvelope }
func (a *NodeJoinTxAux) TxID() TxID       { return a.Tx.ID() }
func (*NodeJoinTxAux) tag() byte          { return nodeJoinAuxTag }

// EncodeTxAux returns the broadcast bytes: envelope kind, variant tag, RLP body.
func EncodeTxAux(aux TxAux) ([]byte, error) {
	enc, err := rlp.EncodeToBytes(aux)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(aux.Kind()), aux.tag()}, enc...), nil
}

func DecodeTxAux(b []byte) (TxAux, error) {
	if len(b) < 2 {
		return nil, ErrUnknownEnvelope
	}
	var aux TxAux
	switch b[1] {
	case depositStakeAuxTag:
		aux = new(DepositStakeTxAux)
	case withdrawUnbondedAuxTag:
		aux = new(WithdrawUnbondedStakeTxAux)
	case unbondStakeAuxTag:
		aux = new(UnbondStakeTxAux)
	case unjailAuxTag:
		aux = new(UnjailTxAux)
	case nodeJoinAuxTag:
		aux = new(NodeJoinTxAux)
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownEnvelope, b[1])
	}
	if EnvelopeKind(b[0]) != aux.Kind() {
		return nil, fmt.Errorf("%w: kind %s does not match tag %d", ErrUnknownEnvelope, EnvelopeKind(b[0]), b[1])
	}
	if err := rlp.DecodeBytes(b[2:], aux); err != nil {
		return nil, err
	}
	return aux, nil
}

// SignedTransaction is a signed body awaiting the confidentiality transform.
type SignedTransaction interface {
	TxID() TxID
	isSignedTransaction()
}

type SignedDepositStakeTx struct {
	Tx      DepositBondTx
	Witness TxWitness
}

func (s *SignedDepositStakeTx) TxID() TxID         { return s.Tx.ID() }
func (*SignedDepositStakeTx) isSignedTransaction() {}

type SignedWithdrawUnbondedStakeTx struct {
	Tx      WithdrawUnbondedTx
	Witness StakingOpWitness
}

func (s *SignedWithdrawUnbondedStakeTx) TxID() TxID         { return s.Tx.ID() }
func (*SignedWithdrawUnbondedStakeTx) isSignedTransaction() {}

// PlainTxAux is the plaintext sealed inside an enclave envelope.
type PlainTxAux interface {
	tag() byte
}

type PlainDepositStakeTx struct {
	Witness TxWitness
}

func (*PlainDepositStakeTx) tag() byte { return depositStakeAuxTag }

type PlainWithdrawUnbondedStakeTx struct {
	Tx WithdrawUnbondedTx
}

func (*PlainWithdrawUnbondedStakeTx) tag() byte { return withdrawUnbondedAuxTag }

func EncodePlainTxAux(plain PlainTxAux) ([]byte, error) {
	enc, err := rlp.EncodeToBytes(plain)
	if err != nil {
		return nil, err
	}
	return append([]byte{plain.tag()}, enc...), nil
}

func DecodePlainTxAux(b []byte) (PlainTxAux, error) {
	if len(b) == 0 {
		return nil, ErrUnknownEnvelope
	}
	var plain PlainTxAux
	switch b[0] {
	case depositStakeAuxTag:
		plain = new(PlainDepositStakeTx)
	case withdrawUnbondedAuxTag:
		plain = new(PlainWithdrawUnbondedStakeTx)
	default:
		return nil, fmt.Errorf("%w: plain tag %d", ErrUnknownEnvelope, b[0])
	}
	if err := rlp.DecodeBytes(b[1:], plain); err != nil {
		return nil, err
	}
	return plain, nil
}
