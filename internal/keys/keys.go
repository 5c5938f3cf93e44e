// Package keys wraps the secp256k1 keys used for staking and transfer
// authorization.
package keys

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/babylonchain/staking-ops-client/internal/chain"
)

type PublicKey struct {
	key *btcec.PublicKey
}

// ParsePublicKey parses a compressed or uncompressed serialized key.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: key}, nil
}

func (p *PublicKey) Serialize() []byte {
	return p.key.SerializeCompressed()
}

func (p *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && p.key.IsEqual(other.key)
}

func (p *PublicKey) StakingAddress() chain.StakingAddress {
	return chain.NewStakingAddress(p.key)
}

func (p *PublicKey) TransferAddress() chain.ExtendedAddr {
	return chain.NewExtendedAddr(p.key)
}

func (p *PublicKey) String() string {
	return hex.EncodeToString(p.Serialize())
}

type PrivateKey struct {
	key *btcec.PrivateKey
}

func NewPrivateKey() (*PrivateKey, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("invalid private key length: %d", len(b))
	}
	key, _ := btcec.PrivKeyFromBytes(b)
	if key.Key.IsZero() {
		return nil, fmt.Errorf("invalid private key: zero scalar")
	}
	return &PrivateKey{key: key}, nil
}

func (k *PrivateKey) Serialize() []byte {
	return k.key.Serialize()
}

func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: k.key.PubKey()}
}

// Sign produces the recoverable staking witness over the transaction id.
func (k *PrivateKey) Sign(tx chain.Transaction) (chain.StakingOpWitness, error) {
	id := tx.ID()
	return chain.NewStakingOpWitness(ecdsa.SignCompact(k.key, id[:], false))
}

// SchnorrSign produces the input witness over the transaction id.
func (k *PrivateKey) SchnorrSign(tx chain.Transaction) (chain.TxInWitness, error) {
	var witness chain.TxInWitness
	id := tx.ID()
	sig, err := schnorr.Sign(k.key, id[:])
	if err != nil {
		return witness, fmt.Errorf("failed to schnorr sign transaction %s: %w", chain.FormatTxID(id), err)
	}
	copy(witness.PubKey[:], schnorr.SerializePubKey(k.key.PubKey()))
	copy(witness.Signature[:], sig.Serialize())
	return witness, nil
}
