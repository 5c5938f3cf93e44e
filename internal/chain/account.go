package chain

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/babylonchain/staking-ops-client/internal/types"
)

// TendermintValidatorPubKey is the ed25519 consensus key of a validator node.
type TendermintValidatorPubKey [32]byte

// ConfidentialInit holds the enclave attestation a node presents when joining.
type ConfidentialInit struct {
	Cert []byte
}

// CouncilNode is the metadata of a node requesting or holding validator membership.
type CouncilNode struct {
	Name             string
	SecurityContact  *string
	ConsensusPubKey  TendermintValidatorPubKey
	ConfidentialInit ConfidentialInit
}

func NewCouncilNode(name string, consensusPubKey TendermintValidatorPubKey, init ConfidentialInit) CouncilNode {
	return CouncilNode{
		Name:             name,
		ConsensusPubKey:  consensusPubKey,
		ConfidentialInit: init,
	}
}

type UsedValidatorAddress struct {
	Address [20]byte
	Since   Timespec
}

// Validator is the council membership part of a staking account.
type Validator struct {
	CouncilNode            CouncilNode
	JailedUntil            *Timespec    `rlp:"nilList"`
	InactiveTime           *Timespec    `rlp:"nilList"`
	InactiveBlock          *BlockHeight `rlp:"nilList"`
	UsedValidatorAddresses []UsedValidatorAddress
}

// StakedState is the on-chain record of one staking address as observed at
// query time.
type StakedState struct {
	Nonce        Nonce
	Bonded       types.Coin
	Unbonded     types.Coin
	UnbondedFrom Timespec
	Address      StakingAddress
	Validator    *Validator `rlp:"nil"`
}

func NewStakedState(
	nonce Nonce, bonded, unbonded types.Coin, unbondedFrom Timespec,
	address StakingAddress, validator *Validator,
) *StakedState {
	return &StakedState{
		Nonce:        nonce,
		Bonded:       bonded,
		Unbonded:     unbonded,
		UnbondedFrom: unbondedFrom,
		Address:      address,
		Validator:    validator,
	}
}

// IsJailed reports whether the account carries a jailed-until marker.
func (s *StakedState) IsJailed() bool {
	return s.Validator != nil && s.Validator.JailedUntil != nil
}

// JailedUntil returns the jail expiry, or false when the account is not jailed.
func (s *StakedState) JailedUntil() (Timespec, bool) {
	if !s.IsJailed() {
		return 0, false
	}
	return *s.Validator.JailedUntil, true
}

func (s *StakedState) Encode() ([]byte, error) {
	return rlp.EncodeToBytes(s)
}

func DecodeStakedState(b []byte) (*StakedState, error) {
	var state StakedState
	if err := rlp.DecodeBytes(b, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
