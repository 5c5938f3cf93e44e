package chain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// RedeemAddress is the keccak256 hash of an uncompressed secp256k1 public key,
// truncated to its last 20 bytes.
type RedeemAddress [20]byte

func NewRedeemAddress(pub *btcec.PublicKey) RedeemAddress {
	var addr RedeemAddress
	// drop the 0x04 prefix of the uncompressed serialization
	copy(addr[:], crypto.Keccak256(pub.SerializeUncompressed()[1:])[12:])
	return addr
}

func (a RedeemAddress) String() string {
	return common.Address(a).Hex()
}

// StakingAddress identifies a staking account on the ledger. Only the basic
// redeem form exists.
type StakingAddress RedeemAddress

func NewStakingAddress(pub *btcec.PublicKey) StakingAddress {
	return StakingAddress(NewRedeemAddress(pub))
}

func (a StakingAddress) Redeem() RedeemAddress {
	return RedeemAddress(a)
}

func (a StakingAddress) Bytes() []byte {
	return a[:]
}

func (a StakingAddress) String() string {
	return RedeemAddress(a).String()
}

// ParseStakingAddress parses a 0x-prefixed hex address.
func ParseStakingAddress(s string) (StakingAddress, error) {
	if !common.IsHexAddress(s) {
		return StakingAddress{}, fmt.Errorf("invalid staking address: %s", s)
	}
	return StakingAddress(common.HexToAddress(s)), nil
}

// ExtendedAddr is a transfer address: the sha256 root of the x-only Schnorr
// key allowed to spend outputs sent to it.
type ExtendedAddr [32]byte

func NewExtendedAddr(pub *btcec.PublicKey) ExtendedAddr {
	return ExtendedAddr(chainhash.HashH(schnorr.SerializePubKey(pub)))
}

func (a ExtendedAddr) String() string {
	return hex.EncodeToString(a[:])
}

func ParseExtendedAddr(s string) (ExtendedAddr, error) {
	var addr ExtendedAddr
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return addr, fmt.Errorf("invalid transfer address %s: %w", s, err)
	}
	if len(b) != len(addr) {
		return addr, fmt.Errorf("invalid transfer address %s: expected %d bytes, got %d", s, len(addr), len(b))
	}
	copy(addr[:], b)
	return addr, nil
}
