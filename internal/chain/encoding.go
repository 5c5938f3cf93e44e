package chain

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
)

// Integers whose value differs between a fee estimate and the transaction it
// stands for are encoded as fixed-width big-endian strings. A set optional
// integer is never the empty string, so nilList pointers to zero round-trip.

func encodeUint64(w io.Writer, v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return rlp.Encode(w, b[:])
}

func decodeUint64(s *rlp.Stream) (uint64, error) {
	var b [8]byte
	if err := s.Decode(&b); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// Nonce is the number of staking operations an account has executed.
type Nonce uint64

func (n Nonce) EncodeRLP(w io.Writer) error { return encodeUint64(w, uint64(n)) }

func (n *Nonce) DecodeRLP(s *rlp.Stream) error {
	v, err := decodeUint64(s)
	if err != nil {
		return err
	}
	*n = Nonce(v)
	return nil
}

// BlockHeight is a ledger block number.
type BlockHeight uint64

func (h BlockHeight) EncodeRLP(w io.Writer) error { return encodeUint64(w, uint64(h)) }

func (h *BlockHeight) DecodeRLP(s *rlp.Stream) error {
	v, err := decodeUint64(s)
	if err != nil {
		return err
	}
	*h = BlockHeight(v)
	return nil
}

func (t Timespec) EncodeRLP(w io.Writer) error { return encodeUint64(w, uint64(t)) }

func (t *Timespec) DecodeRLP(s *rlp.Stream) error {
	v, err := decodeUint64(s)
	if err != nil {
		return err
	}
	*t = Timespec(v)
	return nil
}

type txoPointerRLP struct {
	ID    TxID
	Index [2]byte
}

func (p TxoPointer) EncodeRLP(w io.Writer) error {
	enc := txoPointerRLP{ID: p.ID}
	binary.BigEndian.PutUint16(enc.Index[:], p.Index)
	return rlp.Encode(w, &enc)
}

func (p *TxoPointer) DecodeRLP(s *rlp.Stream) error {
	var dec txoPointerRLP
	if err := s.Decode(&dec); err != nil {
		return err
	}
	p.ID, p.Index = dec.ID, binary.BigEndian.Uint16(dec.Index[:])
	return nil
}

// chain id byte followed by the big-endian app version
type stakingOpAttributesRLP struct {
	Packed [9]byte
}

func (a StakingOpAttributes) EncodeRLP(w io.Writer) error {
	var enc stakingOpAttributesRLP
	enc.Packed[0] = a.ChainHexID
	binary.BigEndian.PutUint64(enc.Packed[1:], a.AppVersion)
	return rlp.Encode(w, &enc)
}

func (a *StakingOpAttributes) DecodeRLP(s *rlp.Stream) error {
	var dec stakingOpAttributesRLP
	if err := s.Decode(&dec); err != nil {
		return err
	}
	a.ChainHexID, a.AppVersion = dec.Packed[0], binary.BigEndian.Uint64(dec.Packed[1:])
	return nil
}

// the security contact is a list of at most one entry, which keeps an empty
// contact apart from an absent one
type councilNodeRLP struct {
	Name             string
	SecurityContact  []string
	ConsensusPubKey  TendermintValidatorPubKey
	ConfidentialInit ConfidentialInit
}

func (n CouncilNode) EncodeRLP(w io.Writer) error {
	enc := councilNodeRLP{
		Name:             n.Name,
		SecurityContact:  []string{},
		ConsensusPubKey:  n.ConsensusPubKey,
		ConfidentialInit: n.ConfidentialInit,
	}
	if n.SecurityContact != nil {
		enc.SecurityContact = append(enc.SecurityContact, *n.SecurityContact)
	}
	return rlp.Encode(w, &enc)
}

func (n *CouncilNode) DecodeRLP(s *rlp.Stream) error {
	var dec councilNodeRLP
	if err := s.Decode(&dec); err != nil {
		return err
	}
	if len(dec.SecurityContact) > 1 {
		return fmt.Errorf("council node carries %d security contacts", len(dec.SecurityContact))
	}
	*n = CouncilNode{
		Name:             dec.Name,
		ConsensusPubKey:  dec.ConsensusPubKey,
		ConfidentialInit: dec.ConfidentialInit,
	}
	if len(dec.SecurityContact) == 1 {
		n.SecurityContact = &dec.SecurityContact[0]
	}
	return nil
}
