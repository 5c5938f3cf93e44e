// Package obfuscation seals the confidential parts of enclave-bound
// transactions.
package obfuscation

import (
	"context"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/babylonchain/staking-ops-client/internal/chain"
)

const KeySize = chacha20poly1305.KeySize

var (
	ErrUnsupportedTransaction = errors.New("transaction type cannot be obfuscated")
	ErrPayloadMismatch        = errors.New("payload does not belong to this key or transaction")
)

type TransactionObfuscation interface {
	Encrypt(ctx context.Context, tx chain.SignedTransaction) (chain.TxAux, error)
}

// Cipher seals payloads with ChaCha20-Poly1305 under a key valid from block
// height keyFrom. The nonce is derived from the key and the transaction id,
// so sealing the same transaction twice yields the same envelope.
type Cipher struct {
	aead    cipher.AEAD
	key     [KeySize]byte
	keyFrom chain.BlockHeight
}

func NewCipher(key [KeySize]byte, keyFrom uint64) (*Cipher, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead, key: key, keyFrom: chain.BlockHeight(keyFrom)}, nil
}

// NewCipherFromHex builds a cipher from a hex encoded 32 byte key.
func NewCipherFromHex(keyHex string, keyFrom uint64) (*Cipher, error) {
	b, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid obfuscation key: %w", err)
	}
	if len(b) != KeySize {
		return nil, fmt.Errorf("invalid obfuscation key length: expected %d, got %d", KeySize, len(b))
	}
	var key [KeySize]byte
	copy(key[:], b)
	return NewCipher(key, keyFrom)
}

// SealedSize is the payload length produced for a plaintext of n bytes.
func SealedSize(n int) int {
	return n + chacha20poly1305.Overhead
}

func (c *Cipher) Encrypt(ctx context.Context, tx chain.SignedTransaction) (chain.TxAux, error) {
	switch signed := tx.(type) {
	case *chain.SignedDepositStakeTx:
		payload, err := c.seal(signed.TxID(), &chain.PlainDepositStakeTx{Witness: signed.Witness})
		if err != nil {
			return nil, err
		}
		return &chain.DepositStakeTxAux{Tx: signed.Tx, Payload: payload}, nil
	case *chain.SignedWithdrawUnbondedStakeTx:
		payload, err := c.seal(signed.TxID(), &chain.PlainWithdrawUnbondedStakeTx{Tx: signed.Tx})
		if err != nil {
			return nil, err
		}
		return &chain.WithdrawUnbondedStakeTxAux{
			NoOfOutputs: uint16(len(signed.Tx.Outputs)),
			Witness:     signed.Witness,
			Payload:     payload,
		}, nil
	default:
		log.Ctx(ctx).Error().Msgf("unsupported signed transaction %T", tx)
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedTransaction, tx)
	}
}

// Decrypt opens a payload sealed by Encrypt.
func (c *Cipher) Decrypt(payload chain.TxObfuscated) (chain.PlainTxAux, error) {
	if payload.KeyFrom != c.keyFrom || payload.InitVector != c.nonce(payload.TxID) {
		return nil, ErrPayloadMismatch
	}
	plain, err := c.aead.Open(nil, payload.InitVector[:], payload.Payload, payload.TxID[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadMismatch, err)
	}
	return chain.DecodePlainTxAux(plain)
}

func (c *Cipher) seal(txid chain.TxID, plain chain.PlainTxAux) (chain.TxObfuscated, error) {
	enc, err := chain.EncodePlainTxAux(plain)
	if err != nil {
		return chain.TxObfuscated{}, fmt.Errorf("failed to encode plain payload: %w", err)
	}
	nonce := c.nonce(txid)
	return chain.TxObfuscated{
		TxID:       txid,
		KeyFrom:    c.keyFrom,
		InitVector: nonce,
		Payload:    c.aead.Seal(nil, nonce[:], enc, txid[:]),
	}, nil
}

func (c *Cipher) nonce(txid chain.TxID) [chacha20poly1305.NonceSize]byte {
	var nonce [chacha20poly1305.NonceSize]byte
	h := chainhash.HashH(append(c.key[:], txid[:]...))
	copy(nonce[:], h[:])
	return nonce
}
